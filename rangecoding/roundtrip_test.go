package rangecoding

import (
	"math/rand"
	"testing"
)

// TestEncoderInit verifies the initial coder state.
func TestEncoderInit(t *testing.T) {
	enc := &Encoder{}
	enc.Init(make([]byte, 16))
	if enc.rng != EC_CODE_TOP {
		t.Errorf("rng = %#x, want %#x", enc.rng, EC_CODE_TOP)
	}
	if enc.Tell() != 1 {
		t.Errorf("Tell() = %d, want 1", enc.Tell())
	}
	if enc.Error() != 0 {
		t.Errorf("Error() = %d, want 0", enc.Error())
	}
}

// TestEncodeDecodeICDF16RoundTrip codes random symbols from a 15-bit table.
func TestEncodeDecodeICDF16RoundTrip(t *testing.T) {
	icdf := []uint16{24000, 12000, 4000, 1000, 0}
	rng := rand.New(rand.NewSource(7))
	symbols := make([]int, 500)
	for i := range symbols {
		symbols[i] = rng.Intn(len(icdf))
	}

	buf := make([]byte, 1024)
	enc := &Encoder{}
	enc.Init(buf)
	for _, s := range symbols {
		enc.EncodeICDF16(s, icdf, 15)
		if enc.rng <= EC_CODE_BOT {
			t.Fatalf("range invariant violated: rng=%#x", enc.rng)
		}
	}
	data := enc.Done()
	if enc.Error() != 0 {
		t.Fatalf("encoder error %d", enc.Error())
	}

	dec := &Decoder{}
	dec.Init(data)
	for i, want := range symbols {
		if got := dec.DecodeICDF16(icdf, 15); got != want {
			t.Fatalf("symbol %d = %d, want %d", i, got, want)
		}
	}
}

// TestEncodeDecodeUniformRoundTrip covers alphabets up to MaxUniform.
func TestEncodeDecodeUniformRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ft   uint32
	}{
		{"ft=2", 2},
		{"ft=16", 16},
		{"ft=256", 256},
		{"ft=1000", 1000},
		{"ft=MaxUniform", MaxUniform},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(tt.ft)))
			values := make([]uint32, 64)
			for i := range values {
				values[i] = uint32(rng.Int63n(int64(tt.ft)))
			}
			buf := make([]byte, 512)
			enc := &Encoder{}
			enc.Init(buf)
			for _, v := range values {
				enc.EncodeUniform(v, tt.ft)
			}
			data := enc.Done()

			dec := &Decoder{}
			dec.Init(data)
			for i, want := range values {
				if got := dec.DecodeUniform(tt.ft); got != want {
					t.Fatalf("value %d = %d, want %d", i, got, want)
				}
			}
			if dec.Error() != 0 {
				t.Errorf("decoder error %d", dec.Error())
			}
		})
	}
}

// TestUniformInterleavedWithICDF mixes uniform values with table-coded
// symbols in one stream.
func TestUniformInterleavedWithICDF(t *testing.T) {
	icdf := []uint16{16384, 0}
	enc := &Encoder{}
	enc.Init(make([]byte, 256))
	for i := 0; i < 20; i++ {
		enc.EncodeICDF16(i&1, icdf, 15)
		enc.EncodeUniform(uint32(i*37)%1000, 1000)
	}
	data := enc.Done()
	if enc.Error() != 0 {
		t.Fatalf("encoder error %d", enc.Error())
	}

	dec := &Decoder{}
	dec.Init(data)
	for i := 0; i < 20; i++ {
		if got := dec.DecodeICDF16(icdf, 15); got != i&1 {
			t.Fatalf("symbol %d = %d, want %d", i, got, i&1)
		}
		if got := dec.DecodeUniform(1000); got != uint32(i*37)%1000 {
			t.Fatalf("uniform %d = %d, want %d", i, got, uint32(i*37)%1000)
		}
	}
}

// TestEncoderDeterminism verifies identical input gives identical bytes.
func TestEncoderDeterminism(t *testing.T) {
	icdf := []uint16{30000, 20000, 8000, 0}
	var first []byte
	for run := 0; run < 3; run++ {
		enc := &Encoder{}
		enc.Init(make([]byte, 64))
		for i := 0; i < 40; i++ {
			enc.EncodeICDF16(i%4, icdf, 15)
		}
		out := append([]byte(nil), enc.Done()...)
		if first == nil {
			first = out
			continue
		}
		if string(out) != string(first) {
			t.Fatalf("run %d: output % x, want % x", run, out, first)
		}
	}
}

// TestEncoderOverflow verifies a too-small buffer sets the error flag.
func TestEncoderOverflow(t *testing.T) {
	enc := &Encoder{}
	enc.Init(make([]byte, 2))
	icdf := []uint16{16384, 0}
	for i := 0; i < 200; i++ {
		enc.EncodeICDF16(i&1, icdf, 15)
	}
	enc.Done()
	if enc.Error() == 0 {
		t.Error("expected overflow error for 200 bits into 2 bytes")
	}
}

// TestTellTracksBits verifies Tell grows with coded information.
func TestTellTracksBits(t *testing.T) {
	enc := &Encoder{}
	enc.Init(make([]byte, 256))
	icdf := []uint16{16384, 0}
	prev := enc.Tell()
	for i := 0; i < 64; i++ {
		enc.EncodeICDF16(i&1, icdf, 15)
		if tell := enc.Tell(); tell < prev {
			t.Fatalf("Tell decreased: %d -> %d", prev, tell)
		} else {
			prev = tell
		}
	}
	// 64 equiprobable binary symbols cost 64 bits plus the initial bit.
	if prev < 64 || prev > 66 {
		t.Errorf("Tell() = %d after 64 one-bit symbols, want ~65", prev)
	}
}

func TestIlog(t *testing.T) {
	tests := []struct {
		x    uint32
		want int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {255, 8}, {256, 9}, {0x80000000, 32},
	}
	for _, tt := range tests {
		if got := ilog(tt.x); got != tt.want {
			t.Errorf("ilog(%#x) = %d, want %d", tt.x, got, tt.want)
		}
	}
}
