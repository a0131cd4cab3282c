package commands

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/thesyncim/dred"
	"github.com/thesyncim/dred/internal/testsignal"
)

// readFeatureFile reads raw little-endian float32 records and keeps the
// first dred.NumFeatures values of each.
func readFeatureFile(path string, recordSize int) ([]dred.FeatureFrame, error) {
	if recordSize < dred.NumFeatures {
		return nil, fmt.Errorf("record size %d below %d features", recordSize, dred.NumFeatures)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read features: %w", err)
	}
	if len(data)%(4*recordSize) != 0 {
		return nil, fmt.Errorf("%s: %d bytes is not a whole number of %d-float records", path, len(data), recordSize)
	}
	vals := make([]float32, len(data)/4)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, vals); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	frames := make([]dred.FeatureFrame, len(vals)/recordSize)
	for i := range frames {
		copy(frames[i][:], vals[i*recordSize:])
	}
	return frames, nil
}

func syntheticFeatures(variant string, frames int) ([]dred.FeatureFrame, error) {
	vals, err := testsignal.GenerateFeatureVariant(variant, frames, dred.NumFeatures)
	if err != nil {
		return nil, err
	}
	out := make([]dred.FeatureFrame, frames)
	for i := range out {
		copy(out[i][:], vals[i*dred.NumFeatures:])
	}
	return out, nil
}

// encoderInputs groups frames into encoder steps, dropping a trailing
// partial step.
func encoderInputs(frames []dred.FeatureFrame) []dred.EncoderInput {
	in := make([]dred.EncoderInput, len(frames)/dred.EncoderStride)
	for i := range in {
		copy(in[i][:], frames[i*dred.EncoderStride:])
	}
	return in
}
