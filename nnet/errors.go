package nnet

import "errors"

// ErrShape reports weights or biases whose length does not match the
// declared layer dimensions.
var ErrShape = errors.New("nnet: layer shape mismatch")
