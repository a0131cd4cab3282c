package rdovae

import (
	"errors"
	"testing"

	"github.com/thesyncim/dred/nnet"
)

// smallConfig keeps model tests fast while exercising every layer.
func smallConfig() Config {
	return Config{
		NumFeatures:   4,
		EncoderStride: 2,
		DecoderStride: 3,
		LatentDim:     8,
		StateDim:      5,
		CondSize:      16,
		CondSize2:     12,
		StateHidden:   6,
	}
}

func TestNewModelShapes(t *testing.T) {
	m, err := NewModel("test", smallConfig())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	layers := m.Layers()
	if len(layers) != 23 {
		t.Fatalf("len(Layers()) = %d, want 23", len(layers))
	}
	seen := map[string]bool{}
	for _, l := range layers {
		if seen[l.Name] {
			t.Errorf("duplicate layer name %q", l.Name)
		}
		seen[l.Name] = true
	}
	if got := m.Encoder.ZDense.In; got != smallConfig().ConcatSize() {
		t.Errorf("zdense input = %d, want %d", got, smallConfig().ConcatSize())
	}
	if got := m.Decoder.Final.Out; got != 12 {
		t.Errorf("final output = %d, want 12", got)
	}
}

func TestNewModelInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.CondSize = 0
	if _, err := NewModel("test", cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NewModel() error = %v, want ErrInvalidConfig", err)
	}
}

func TestModelValidateDetectsBadLayer(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Model)
	}{
		{"short weights", func(m *Model) { m.Encoder.Dense3.Weights = m.Encoder.Dense3.Weights[:5] }},
		{"wrong activation", func(m *Model) { m.Decoder.Final.Activation = nnet.ActivationTanh }},
		{"wrong gru width", func(m *Model) { m.Decoder.GRU4 = nnet.NewGRU(12, 15) }},
		{"missing layer", func(m *Model) { m.Encoder.GDense2 = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel("test", smallConfig())
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(m)
			if err := m.Validate(); !errors.Is(err, ErrLayerShape) {
				t.Errorf("Validate() = %v, want ErrLayerShape", err)
			}
		})
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	a, err := Synthesize(smallConfig(), 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Synthesize(smallConfig(), 7)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Synthesize(smallConfig(), 8)
	if err != nil {
		t.Fatal(err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("same seed gave different weights")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different seeds gave identical weights")
	}
	for _, l := range a.Layers() {
		var bias []float32
		if l.GRU != nil {
			bias = l.GRU.Bias
		} else {
			bias = l.Dense.Bias
		}
		for i, v := range bias {
			if v != 0 {
				t.Fatalf("%s: bias[%d] = %v, want 0", l.Name, i, v)
			}
		}
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	m, err := Synthesize(smallConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}
	base := m.Fingerprint()
	m.Decoder.State2.Weights[3] += 1e-6
	if m.Fingerprint() == base {
		t.Error("fingerprint ignores a weight change")
	}
	m.Decoder.State2.Weights[3] -= 1e-6
	m.Version = "other"
	if m.Fingerprint() == base {
		t.Error("fingerprint ignores the version")
	}
}

func TestDefaultModelShared(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default() returned different models")
	}
	m := Default()
	if m.Version != SynthVersion {
		t.Errorf("Version = %q, want %q", m.Version, SynthVersion)
	}
	if m.Config != DefaultConfig() {
		t.Errorf("Config = %+v, want defaults", m.Config)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
