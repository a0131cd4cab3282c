package rdovae

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"
)

// SynthVersion is the version string of synthesized models.
const SynthVersion = "rdovae-synth-v1"

// DefaultSeed is the seed of the built-in default model.
const DefaultSeed = 0x6472_6564

// Synthesize builds a model with deterministic pseudo-random weights and
// zero biases. Each weight is drawn from N(0, 1/fanIn), so every tanh
// layer stays out of saturation for unit-scale inputs. The same config and
// seed always give bit-identical weights.
func Synthesize(cfg Config, seed uint64) (*Model, error) {
	m, err := NewModel(SynthVersion, cfg)
	if err != nil {
		return nil, err
	}
	for i, l := range m.Layers() {
		// Each layer gets its own stream so adding a layer does not
		// perturb the others.
		src := rand.NewPCG(seed, uint64(i)+1)
		if l.GRU != nil {
			fill(l.GRU.InputWeights, l.GRU.In, src)
			fill(l.GRU.RecurrentWeights, l.GRU.N, src)
			continue
		}
		fill(l.Dense.Weights, l.Dense.In, src)
	}
	slog.Debug("rdovae: synthesized model",
		"version", m.Version, "seed", seed, "params", m.Params())
	return m, nil
}

func fill(w []float32, fanIn int, src rand.Source) {
	n := distuv.Normal{Mu: 0, Sigma: 1 / math.Sqrt(float64(fanIn)), Src: src}
	for i := range w {
		w[i] = float32(n.Rand())
	}
}

var (
	defaultOnce  sync.Once
	defaultModel *Model
)

// Default returns the shared built-in model: DefaultConfig synthesized with
// DefaultSeed. Its weights are random, not trained, so it does not
// reconstruct its input. It must not be modified.
func Default() *Model {
	defaultOnce.Do(func() {
		m, err := Synthesize(DefaultConfig(), DefaultSeed)
		if err != nil {
			panic("rdovae: default model: " + err.Error())
		}
		defaultModel = m
	})
	return defaultModel
}
