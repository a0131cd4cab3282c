package dred

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/thesyncim/dred/internal/testsignal"
	"github.com/thesyncim/dred/rdovae"
	"github.com/thesyncim/dred/rdovae/rdovaetest"
)

func passthroughPair(t *testing.T) (*Encoder, *Decoder) {
	t.Helper()
	m, err := rdovaetest.Passthrough(rdovae.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	enc, err := NewEncoderWithModel(m)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := NewDecoderWithModel(m)
	if err != nil {
		t.Fatal(err)
	}
	return enc, dec
}

func encodeInputs(enc *Encoder, inputs []EncoderInput) ([]Latents, []InitialState) {
	zs := make([]Latents, len(inputs))
	ss := make([]InitialState, len(inputs))
	for i := range inputs {
		enc.EncodeFrame(&zs[i], &ss[i], &inputs[i])
	}
	return zs, ss
}

// Unquantized latents decode back to the encoder input. The passthrough
// model emits each encoded stride twice per decoder step.
func TestRoundTripUnquantized(t *testing.T) {
	for _, n := range []int{1, 10, 100} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			enc, dec := passthroughPair(t)
			inputs := featureInputs(t, testsignal.FeatureVariantSpeechLikeV1, n)
			zs, ss := encodeInputs(enc, inputs)

			outs := make([]DecoderOutput, n)
			if got, err := dec.DecodeAll(outs, &ss[0], zs); err != nil || got != n {
				t.Fatalf("DecodeAll() = %d, %v", got, err)
			}
			approx := cmpopts.EquateApprox(0, 1e-4)
			for i := range inputs {
				for f := 0; f < DecoderStride; f++ {
					want := inputs[i][f%EncoderStride]
					if diff := cmp.Diff(want, outs[i][f], approx); diff != "" {
						t.Fatalf("step %d frame %d (-input +decoded):\n%s", i, f, diff)
					}
				}
			}
		})
	}
}

// A decoder re-seeded mid-stream is indistinguishable from a fresh decoder
// seeded with the same snapshot: injection replaces every hidden vector.
func TestReseedMatchesFreshDecoder(t *testing.T) {
	const k = 4
	check := func(t *testing.T, enc *Encoder, used, fresh *Decoder) {
		inputs := featureInputs(t, testsignal.FeatureVariantChirpSweepV1, 12)
		zs, ss := encodeInputs(enc, inputs)

		used.InitStates(&ss[0])
		var out DecoderOutput
		for i := 1; i <= k; i++ {
			if err := used.DecodeFrame(&out, &zs[i]); err != nil {
				t.Fatal(err)
			}
		}
		used.InitStates(&ss[k])
		fresh.InitStates(&ss[k])

		var want DecoderOutput
		for i := k + 1; i < len(zs); i++ {
			if err := used.DecodeFrame(&want, &zs[i]); err != nil {
				t.Fatal(err)
			}
			if err := fresh.DecodeFrame(&out, &zs[i]); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, out); diff != "" {
				t.Fatalf("step %d (-used +fresh):\n%s", i, diff)
			}
		}
	}
	t.Run("passthrough", func(t *testing.T) {
		enc, used := passthroughPair(t)
		_, fresh := passthroughPair(t)
		check(t, enc, used, fresh)
	})
	t.Run("default", func(t *testing.T) {
		check(t, NewEncoder(), NewDecoder(), NewDecoder())
	})
}

// Resync also holds for the passthrough model without re-seeding the
// long-running decoder, since its recurrent cells keep no memory.
func TestResyncPassthroughWithoutReseed(t *testing.T) {
	enc, full := passthroughPair(t)
	_, jump := passthroughPair(t)
	inputs := featureInputs(t, testsignal.FeatureVariantOnsetsV1, 30)
	zs, ss := encodeInputs(enc, inputs)

	const k = 17
	full.InitStates(&ss[0])
	jump.InitStates(&ss[k])
	var a, b DecoderOutput
	for i := 1; i < len(zs); i++ {
		if err := full.DecodeFrame(&a, &zs[i]); err != nil {
			t.Fatal(err)
		}
		if i <= k {
			continue
		}
		if err := jump.DecodeFrame(&b, &zs[i]); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(a, b, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
			t.Fatalf("step %d (-full +jump):\n%s", i, diff)
		}
	}
}

func TestDecodeAllShortOutput(t *testing.T) {
	dec := NewDecoder()
	var s InitialState
	_, err := dec.DecodeAll(make([]DecoderOutput, 1), &s, make([]Latents, 2))
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("DecodeAll() error = %v, want ErrBufferTooSmall", err)
	}
	if dec.Seeded() {
		t.Error("failed DecodeAll seeded the decoder")
	}
}

func BenchmarkDecodeFrame(b *testing.B) {
	inputs := featureInputs(b, testsignal.FeatureVariantSpeechLikeV1, 4)
	zs, ss := encodeInputs(NewEncoder(), inputs)
	dec := NewDecoder()
	dec.InitStates(&ss[0])
	var out DecoderOutput
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := dec.DecodeFrame(&out, &zs[i%len(zs)]); err != nil {
			b.Fatal(err)
		}
	}
}
