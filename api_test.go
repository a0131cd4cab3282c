package dred

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/thesyncim/dred/rdovae"
	"github.com/thesyncim/dred/rdovae/rdovaetest"
)

func TestStateSizes(t *testing.T) {
	if got := EncoderStateSize(); got != 17920 {
		t.Errorf("EncoderStateSize() = %d, want 17920", got)
	}
	if got := DecoderStateSize(); got != 17408 {
		t.Errorf("DecoderStateSize() = %d, want 17408", got)
	}
	if got := NewEncoder().StateSize(); got != EncoderStateSize() {
		t.Errorf("Encoder.StateSize() = %d, want %d", got, EncoderStateSize())
	}
	if got := NewDecoder().StateSize(); got != DecoderStateSize() {
		t.Errorf("Decoder.StateSize() = %d, want %d", got, DecoderStateSize())
	}
}

func TestNewWithModelShape(t *testing.T) {
	narrow := rdovae.DefaultConfig()
	narrow.CondSize = 32
	narrow.CondSize2 = 48
	narrow.StateHidden = 16

	wrongLatent := rdovae.DefaultConfig()
	wrongLatent.LatentDim = 64

	wrongStride := rdovae.DefaultConfig()
	wrongStride.DecoderStride = 2

	tests := []struct {
		name    string
		cfg     rdovae.Config
		wantErr error
	}{
		{"narrow layers", narrow, nil},
		{"latent dim", wrongLatent, ErrModelShape},
		{"decoder stride", wrongStride, ErrModelShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := rdovae.Synthesize(tt.cfg, 1)
			if err != nil {
				t.Fatal(err)
			}
			_, encErr := NewEncoderWithModel(m)
			_, decErr := NewDecoderWithModel(m)
			if !errors.Is(encErr, tt.wantErr) || (tt.wantErr == nil && encErr != nil) {
				t.Errorf("NewEncoderWithModel() error = %v, want %v", encErr, tt.wantErr)
			}
			if !errors.Is(decErr, tt.wantErr) || (tt.wantErr == nil && decErr != nil) {
				t.Errorf("NewDecoderWithModel() error = %v, want %v", decErr, tt.wantErr)
			}
		})
	}
}

func TestNewWithModelRejectsNilAndBroken(t *testing.T) {
	if _, err := NewEncoderWithModel(nil); !errors.Is(err, ErrModelShape) {
		t.Errorf("nil model: error = %v, want ErrModelShape", err)
	}
	m, err := rdovaetest.Passthrough(rdovae.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	m.Decoder.State3.Bias = nil
	if _, err := NewDecoderWithModel(m); !errors.Is(err, ErrModelShape) {
		t.Errorf("broken model: error = %v, want ErrModelShape", err)
	}
}

func TestDecodeBeforeSeeding(t *testing.T) {
	d := NewDecoder()
	var out DecoderOutput
	var z Latents
	if err := d.DecodeFrame(&out, &z); !errors.Is(err, ErrNotSeeded) {
		t.Fatalf("DecodeFrame() error = %v, want ErrNotSeeded", err)
	}
	var s InitialState
	d.InitStates(&s)
	if err := d.DecodeFrame(&out, &z); err != nil {
		t.Fatalf("DecodeFrame() after InitStates error = %v", err)
	}
	d.Reset()
	if err := d.DecodeFrame(&out, &z); !errors.Is(err, ErrNotSeeded) {
		t.Fatalf("DecodeFrame() after Reset error = %v, want ErrNotSeeded", err)
	}
}

func TestModelIDs(t *testing.T) {
	enc, dec := NewEncoder(), NewDecoder()
	if err := CheckCompatible(enc.ModelID(), dec.ModelID()); err != nil {
		t.Fatalf("default encoder/decoder incompatible: %v", err)
	}
	if enc.ModelID() != DefaultModelID() {
		t.Errorf("ModelID() = %v, want %v", enc.ModelID(), DefaultModelID())
	}
	if DefaultModelID().Version != rdovae.SynthVersion {
		t.Errorf("Version = %q, want %q", DefaultModelID().Version, rdovae.SynthVersion)
	}

	other, err := rdovae.Synthesize(rdovae.DefaultConfig(), rdovae.DefaultSeed+1)
	if err != nil {
		t.Fatal(err)
	}
	dec2, err := NewDecoderWithModel(other)
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckCompatible(enc.ModelID(), dec2.ModelID()); !errors.Is(err, ErrModelMismatch) {
		t.Errorf("CheckCompatible() = %v, want ErrModelMismatch", err)
	}
}

// Asking a session for its ModelID must not pin the model in memory once
// the session is gone.
func TestModelIDDoesNotRetainModel(t *testing.T) {
	released := make(chan struct{})
	var id ModelID
	func() {
		m, err := rdovaetest.Passthrough(rdovae.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		runtime.SetFinalizer(m, func(*rdovae.Model) { close(released) })
		enc, err := NewEncoderWithModel(m)
		if err != nil {
			t.Fatal(err)
		}
		id = enc.ModelID()
		if again := enc.ModelID(); again != id {
			t.Fatalf("ModelID() changed: %v then %v", id, again)
		}
	}()
	if id.Version != rdovaetest.PassthroughVersion {
		t.Errorf("Version = %q, want %q", id.Version, rdovaetest.PassthroughVersion)
	}
	for i := 0; i < 50; i++ {
		runtime.GC()
		select {
		case <-released:
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
	t.Fatal("model still reachable after its encoder was dropped")
}

func TestCheckCompatibleFields(t *testing.T) {
	base := ModelID{Version: "v", Weights: 1, Tables: 2}
	tests := []struct {
		name string
		b    ModelID
		ok   bool
	}{
		{"same", base, true},
		{"version", ModelID{Version: "w", Weights: 1, Tables: 2}, false},
		{"weights", ModelID{Version: "v", Weights: 3, Tables: 2}, false},
		{"tables", ModelID{Version: "v", Weights: 1, Tables: 4}, false},
	}
	for _, tt := range tests {
		err := CheckCompatible(base, tt.b)
		if (err == nil) != tt.ok {
			t.Errorf("%s: CheckCompatible() = %v, want ok=%v", tt.name, err, tt.ok)
		}
	}
	if s := base.String(); s != "v/w0000000000000001/t0000000000000002" {
		t.Errorf("String() = %q", s)
	}
}
