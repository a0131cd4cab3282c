package rdovae

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got := c.EncoderInputSize(); got != 40 {
		t.Errorf("EncoderInputSize() = %d, want 40", got)
	}
	if got := c.DecoderOutputSize(); got != 80 {
		t.Errorf("DecoderOutputSize() = %d, want 80", got)
	}
	if got := c.ConcatSize(); got != 2048 {
		t.Errorf("ConcatSize() = %d, want 2048", got)
	}
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    func(Config) bool
		wantErr error
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			want: func(c Config) bool { return c == DefaultConfig() },
		},
		{
			name: "partial override",
			yaml: "cond_size: 64\nlatent_dim: 32\n",
			want: func(c Config) bool {
				return c.CondSize == 64 && c.LatentDim == 32 && c.CondSize2 == 256 && c.NumFeatures == 20
			},
		},
		{
			name:    "zero dimension",
			yaml:    "state_dim: 0\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative dimension",
			yaml:    "encoder_stride: -2\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "dimension over limit",
			yaml:    "cond_size: 16777216\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "too many parameters",
			yaml:    "cond_size: 4096\ncond_size2: 4096\n",
			wantErr: ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseConfig([]byte(tt.yaml))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig() error = %v", err)
			}
			if !tt.want(c) {
				t.Errorf("ParseConfig() = %+v", c)
			}
		})
	}
}

func TestParseConfigUnknownKey(t *testing.T) {
	c, err := ParseConfig([]byte("cond_sise: 64\n"))
	if err == nil {
		t.Fatalf("ParseConfig() = %+v, want error for unknown key", c)
	}
}

func TestConfigParams(t *testing.T) {
	c := smallConfig()
	m, err := Synthesize(c, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.params(), int64(m.Params()); got != want {
		t.Errorf("params() = %d, want %d", got, want)
	}
	if got, want := DefaultConfig().params(), int64(Default().Params()); got != want {
		t.Errorf("default params() = %d, want %d", got, want)
	}

	c = DefaultConfig()
	c.LatentDim = MaxDim
	if err := c.Validate(); err != nil {
		t.Errorf("Validate(latent_dim=%d) = %v", MaxDim, err)
	}
	c.LatentDim = MaxDim + 1
	if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate(latent_dim=%d) = %v, want ErrInvalidConfig", MaxDim+1, err)
	}
}

func TestParseConfigSyntaxError(t *testing.T) {
	if _, err := ParseConfig([]byte("cond_size: [1, 2")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfigRoundTrip(t *testing.T) {
	c := DefaultConfig()
	c.CondSize = 96
	c.StateHidden = 40
	data, err := c.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "model.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got != c {
		t.Errorf("LoadConfig() = %+v, want %+v", got, c)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
