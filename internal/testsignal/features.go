// Package testsignal generates deterministic feature sequences for tests,
// benchmarks and the dredtool CLI.
package testsignal

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	FeatureVariantZeroV1       = "zero_v1"
	FeatureVariantSpeechLikeV1 = "speech_like_v1"
	FeatureVariantChirpSweepV1 = "chirp_sweep_v1"
	FeatureVariantOnsetsV1     = "onsets_v1"
	FeatureVariantNoiseV1      = "noise_v1"
)

var featureVariants = []string{
	FeatureVariantZeroV1,
	FeatureVariantSpeechLikeV1,
	FeatureVariantChirpSweepV1,
	FeatureVariantOnsetsV1,
	FeatureVariantNoiseV1,
}

// frameRate is the feature frame rate in Hz (10 ms frames).
const frameRate = 100.0

func FeatureVariants() []string {
	out := make([]string, len(featureVariants))
	copy(out, featureVariants)
	return out
}

// GenerateFeatureVariant returns frames*numFeatures values laid out frame by
// frame. When numFeatures >= 4 the last two features of each frame carry a
// pitch and a voicing track, the others a cepstrum-like spectral envelope.
func GenerateFeatureVariant(variant string, frames, numFeatures int) ([]float32, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("invalid frame count: %d", frames)
	}
	if numFeatures <= 0 {
		return nil, fmt.Errorf("invalid feature count: %d", numFeatures)
	}
	out := make([]float32, frames*numFeatures)
	switch variant {
	case FeatureVariantZeroV1:
	case FeatureVariantSpeechLikeV1:
		generateSpeechLike(out, frames, numFeatures)
	case FeatureVariantChirpSweepV1:
		generateChirpSweep(out, frames, numFeatures)
	case FeatureVariantOnsetsV1:
		generateOnsets(out, frames, numFeatures)
	case FeatureVariantNoiseV1:
		for i := range out {
			out[i] = float32(0.5 * deterministicNoise(i/numFeatures, i%numFeatures, 29))
		}
	default:
		return nil, fmt.Errorf("unknown feature variant %q", variant)
	}
	return out, nil
}

// HashFloat32LE hashes the little-endian bit patterns of v.
func HashFloat32LE(v []float32) string {
	h := xxhash.New()
	var b [4]byte
	for _, s := range v {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(s))
		_, _ = h.Write(b[:])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func spectralBands(numFeatures int) int {
	if numFeatures >= 4 {
		return numFeatures - 2
	}
	return numFeatures
}

func generateSpeechLike(out []float32, frames, numFeatures int) {
	bands := spectralBands(numFeatures)
	for f := 0; f < frames; f++ {
		t := float64(f) / frameRate
		frame := out[f*numFeatures : (f+1)*numFeatures]

		syllable := 0.25 + 0.75*math.Pow(0.5+0.5*math.Sin(2*math.Pi*3.2*t), 2)
		voicing := 0.5 + 0.5*math.Sin(2*math.Pi*0.78*t+0.25)
		formant := math.Sin(2*math.Pi*0.45*t) + 0.4*math.Sin(2*math.Pi*1.3*t)

		frame[0] = float32(clip(3*syllable - 1.5))
		for k := 1; k < bands; k++ {
			decay := math.Exp(-float64(k) / 4)
			tilt := voicing*math.Cos(float64(k)*(0.9+0.2*formant)) + (1-voicing)*0.3*deterministicNoise(f, k, 71)
			frame[k] = float32(clip(1.6 * decay * tilt))
		}
		if numFeatures >= 4 {
			pitchHz := 95.0 + 28.0*math.Sin(2*math.Pi*0.63*t) + 16.0*math.Sin(2*math.Pi*0.17*t)
			frame[bands] = float32(clip(math.Log2(pitchHz/120) * 2))
			frame[bands+1] = float32(clip(voicing - 0.5))
		}
	}
}

func generateChirpSweep(out []float32, frames, numFeatures int) {
	bands := spectralBands(numFeatures)
	duration := float64(frames) / frameRate
	for f := 0; f < frames; f++ {
		t := float64(f) / frameRate
		frame := out[f*numFeatures : (f+1)*numFeatures]
		// Spectral peak sweeps from the first to the last band.
		peak := float64(bands-1) * t / duration
		for k := 0; k < bands; k++ {
			d := float64(k) - peak
			frame[k] = float32(clip(2*math.Exp(-d*d/2) - 0.5))
		}
		if numFeatures >= 4 {
			frame[bands] = float32(clip(-1.5 + 3*t/duration))
			frame[bands+1] = 0.4
		}
	}
}

func generateOnsets(out []float32, frames, numFeatures int) {
	bands := spectralBands(numFeatures)
	const period = 35
	for f := 0; f < frames; f++ {
		frame := out[f*numFeatures : (f+1)*numFeatures]
		pos := f % period
		env := math.Exp(-float64(pos) / 6)
		for k := 0; k < bands; k++ {
			frame[k] = float32(clip(2.5*env*math.Exp(-float64(k)/6) - 1 + 0.05*deterministicNoise(f, k, 17)))
		}
		if numFeatures >= 4 {
			frame[bands] = float32(clip(0.5 * env))
			frame[bands+1] = float32(clip(env - 0.5))
		}
	}
}

func deterministicNoise(idx, lane, salt int) float64 {
	x := uint32(idx)*1664525 + uint32(lane)*1013904223 + uint32(salt)*2246822519
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return float64(int32(x)) / 2147483647.0
}

// clip bounds features to the range seen in real feature streams.
func clip(v float64) float64 {
	return math.Max(-4, math.Min(4, v))
}
