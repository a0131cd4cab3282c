package rdovae

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config fixes every dimension of an RDOVAE model.
type Config struct {
	NumFeatures   int `yaml:"num_features" msgpack:"num_features"`
	EncoderStride int `yaml:"encoder_stride" msgpack:"encoder_stride"`
	DecoderStride int `yaml:"decoder_stride" msgpack:"decoder_stride"`
	LatentDim     int `yaml:"latent_dim" msgpack:"latent_dim"`
	StateDim      int `yaml:"state_dim" msgpack:"state_dim"`
	CondSize      int `yaml:"cond_size" msgpack:"cond_size"`
	CondSize2     int `yaml:"cond_size2" msgpack:"cond_size2"`
	StateHidden   int `yaml:"state_hidden" msgpack:"state_hidden"`
}

// DefaultConfig returns the geometry of the reference DRED model.
func DefaultConfig() Config {
	return Config{
		NumFeatures:   20,
		EncoderStride: 2,
		DecoderStride: 4,
		LatentDim:     80,
		StateDim:      24,
		CondSize:      256,
		CondSize2:     256,
		StateHidden:   128,
	}
}

// Geometry limits. A config is rejected before any weight is allocated, so
// an asset header cannot demand more memory than MaxParams float32 values.
const (
	MaxDim    = 4096
	MaxParams = 1 << 26
)

// Validate reports the first dimension outside [1, MaxDim], or a geometry
// whose weight count exceeds MaxParams.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    int
	}{
		{"num_features", c.NumFeatures},
		{"encoder_stride", c.EncoderStride},
		{"decoder_stride", c.DecoderStride},
		{"latent_dim", c.LatentDim},
		{"state_dim", c.StateDim},
		{"cond_size", c.CondSize},
		{"cond_size2", c.CondSize2},
		{"state_hidden", c.StateHidden},
	}
	for _, f := range fields {
		if f.v <= 0 || f.v > MaxDim {
			return fmt.Errorf("%w: %s = %d, want 1..%d", ErrInvalidConfig, f.name, f.v, MaxDim)
		}
	}
	if n := c.params(); n > MaxParams {
		return fmt.Errorf("%w: %d parameters, limit %d", ErrInvalidConfig, n, MaxParams)
	}
	return nil
}

// params counts weights and biases from the dimensions alone. Each
// dimension is at most MaxDim, so the int64 sum cannot overflow.
func (c Config) params() int64 {
	var n int64
	for _, l := range build("", c, false).Layers() {
		if g := l.GRU; g != nil {
			n += 3 * int64(g.N) * (int64(g.In) + int64(g.N) + 2)
			continue
		}
		n += int64(l.Dense.Out) * (int64(l.Dense.In) + 1)
	}
	return n
}

// EncoderInputSize is the number of feature values consumed per encode step.
func (c Config) EncoderInputSize() int { return c.NumFeatures * c.EncoderStride }

// DecoderOutputSize is the number of feature values produced per decode step.
func (c Config) DecoderOutputSize() int { return c.NumFeatures * c.DecoderStride }

// ConcatSize is the length of the buffer holding every stack output:
// three dense layers of CondSize2 and three GRUs plus two dense layers of
// CondSize.
func (c Config) ConcatSize() int { return 3*c.CondSize2 + 5*c.CondSize }

// ParseConfig reads a YAML config. Keys that are absent keep their
// DefaultConfig values; unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// YAML renders the config in the format ParseConfig reads.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
