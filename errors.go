package dred

import "errors"

var (
	// ErrNotSeeded indicates DecodeFrame was called before InitStates.
	ErrNotSeeded = errors.New("dred: decoder not seeded (call InitStates first)")

	// ErrInvalidQuantLevel indicates a quantization level outside
	// [0, QuantLevels).
	ErrInvalidQuantLevel = errors.New("dred: invalid quantization level")

	// ErrModelShape indicates a model whose feature, stride, latent or state
	// dimensions differ from the fixed-size types of this package.
	ErrModelShape = errors.New("dred: model geometry does not match package types")

	// ErrModelMismatch indicates two sessions running different weights or
	// tables.
	ErrModelMismatch = errors.New("dred: incompatible model")

	// ErrBufferTooSmall indicates an output buffer cannot hold the result.
	ErrBufferTooSmall = errors.New("dred: output buffer too small")

	// ErrCorruptPayload indicates a latent payload that does not decode.
	ErrCorruptPayload = errors.New("dred: corrupt latent payload")

	// ErrSymbolRange indicates a quantized symbol beyond MaxSymbol.
	ErrSymbolRange = errors.New("dred: symbol out of range")
)
