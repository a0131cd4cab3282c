package rdovae

import (
	"fmt"
	"log/slog"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/thesyncim/dred/nnet"
)

// AssetFormat identifies the msgpack model asset layout.
const AssetFormat = "rdovae.asset.v1"

type assetFile struct {
	Format  string       `msgpack:"format"`
	Version string       `msgpack:"version"`
	Config  Config       `msgpack:"config"`
	Layers  []assetLayer `msgpack:"layers"`
}

type assetLayer struct {
	Name             string    `msgpack:"name"`
	Kind             string    `msgpack:"kind"`
	In               int       `msgpack:"in"`
	Out              int       `msgpack:"out"`
	Activation       uint8     `msgpack:"activation,omitempty"`
	Weights          []float32 `msgpack:"weights"`
	Bias             []float32 `msgpack:"bias"`
	RecurrentWeights []float32 `msgpack:"recurrent_weights,omitempty"`
	RecurrentBias    []float32 `msgpack:"recurrent_bias,omitempty"`
}

const (
	kindDense = "dense"
	kindGRU   = "gru"
)

// Marshal encodes m as a versioned msgpack asset.
func Marshal(m *Model) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	f := assetFile{Format: AssetFormat, Version: m.Version, Config: m.Config}
	for _, l := range m.Layers() {
		if l.GRU != nil {
			f.Layers = append(f.Layers, assetLayer{
				Name:             l.Name,
				Kind:             kindGRU,
				In:               l.GRU.In,
				Out:              l.GRU.N,
				Weights:          l.GRU.InputWeights,
				Bias:             l.GRU.Bias,
				RecurrentWeights: l.GRU.RecurrentWeights,
				RecurrentBias:    l.GRU.RecurrentBias,
			})
			continue
		}
		f.Layers = append(f.Layers, assetLayer{
			Name:       l.Name,
			Kind:       kindDense,
			In:         l.Dense.In,
			Out:        l.Dense.Out,
			Activation: uint8(l.Dense.Activation),
			Weights:    l.Dense.Weights,
			Bias:       l.Dense.Bias,
		})
	}
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("rdovae: marshal asset: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a model asset written by Marshal. Every layer of the
// architecture must be present with the shape implied by the embedded
// config.
func Unmarshal(data []byte) (*Model, error) {
	var f assetFile
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAsset, err)
	}
	if f.Format != AssetFormat {
		return nil, fmt.Errorf("%w: format %q, want %q", ErrInvalidAsset, f.Format, AssetFormat)
	}
	m, err := NewModel(f.Version, f.Config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAsset, err)
	}

	byName := make(map[string]*assetLayer, len(f.Layers))
	for i := range f.Layers {
		l := &f.Layers[i]
		if _, dup := byName[l.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate layer %q", ErrInvalidAsset, l.Name)
		}
		byName[l.Name] = l
	}
	for _, l := range m.Layers() {
		a, ok := byName[l.Name]
		if !ok {
			return nil, fmt.Errorf("%w: missing layer %q", ErrInvalidAsset, l.Name)
		}
		delete(byName, l.Name)
		if err := loadLayer(l, a); err != nil {
			return nil, err
		}
	}
	for name := range byName {
		return nil, fmt.Errorf("%w: unknown layer %q", ErrInvalidAsset, name)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAsset, err)
	}
	slog.Debug("rdovae: loaded model asset",
		"version", m.Version, "layers", len(f.Layers), "params", m.Params())
	return m, nil
}

func loadLayer(l Layer, a *assetLayer) error {
	if l.GRU != nil {
		g := l.GRU
		if a.Kind != kindGRU || a.In != g.In || a.Out != g.N {
			return fmt.Errorf("%w: %s: asset %s %dx%d, want %s", ErrLayerShape, l.Name, a.Kind, a.In, a.Out, l.Shape())
		}
		if err := copyExact(l.Name+" weights", g.InputWeights, a.Weights); err != nil {
			return err
		}
		if err := copyExact(l.Name+" recurrent weights", g.RecurrentWeights, a.RecurrentWeights); err != nil {
			return err
		}
		if err := copyExact(l.Name+" bias", g.Bias, a.Bias); err != nil {
			return err
		}
		return copyExact(l.Name+" recurrent bias", g.RecurrentBias, a.RecurrentBias)
	}
	d := l.Dense
	if a.Kind != kindDense || a.In != d.In || a.Out != d.Out || nnet.Activation(a.Activation) != d.Activation {
		return fmt.Errorf("%w: %s: asset %s %dx%d %v, want %s",
			ErrLayerShape, l.Name, a.Kind, a.In, a.Out, nnet.Activation(a.Activation), l.Shape())
	}
	if err := copyExact(l.Name+" weights", d.Weights, a.Weights); err != nil {
		return err
	}
	return copyExact(l.Name+" bias", d.Bias, a.Bias)
}

func copyExact(what string, dst, src []float32) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrLayerShape, what, len(src), len(dst))
	}
	copy(dst, src)
	return nil
}
