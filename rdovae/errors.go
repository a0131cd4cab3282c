package rdovae

import "errors"

var (
	// ErrInvalidConfig indicates a model geometry with a non-positive or
	// inconsistent dimension.
	ErrInvalidConfig = errors.New("rdovae: invalid config")

	// ErrInvalidAsset indicates a model asset that cannot be decoded or does
	// not describe the RDOVAE architecture.
	ErrInvalidAsset = errors.New("rdovae: invalid model asset")

	// ErrLayerShape indicates a layer whose weights do not match the config.
	ErrLayerShape = errors.New("rdovae: layer shape mismatch")

	// ErrStateBuffer indicates a caller-provided state arena shorter than
	// the size the model requires.
	ErrStateBuffer = errors.New("rdovae: state buffer too small")
)
