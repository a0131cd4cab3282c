// Package dred implements the deep-redundancy (DRED) core of the Opus
// packet-loss-concealment path: a recurrent encoder that compresses audio
// feature frames into small latent vectors, and a recurrent decoder that
// reconstructs feature frames from those latents after packet loss.
//
// # Sessions
//
// An Encoder consumes EncoderStride feature frames per call and emits one
// Latents vector plus an InitialState snapshot. A Decoder is seeded from a
// snapshot with InitStates and then produces DecoderStride feature frames
// per Latents vector:
//
//	enc := dred.NewEncoder()
//	enc.EncodeFrame(&latents, &initial, &input)
//
//	dec := dred.NewDecoder()
//	dec.InitStates(&initial)
//	err := dec.DecodeFrame(&output, &latents)
//
// The decoder may be re-seeded at any point; injection replaces all of its
// recurrent state.
//
// # Models
//
// NewEncoder and NewDecoder run the built-in model, whose weights are
// synthesized deterministically rather than trained. It has the production
// geometry and cost, but its decoded frames bear no resemblance to the
// input. Trained weights are loaded from an asset with rdovae.Unmarshal and
// passed to NewEncoderWithModel and NewDecoderWithModel. For tests that
// need a model which does reconstruct its input, rdovae/rdovaetest builds
// one whose decoder repeats the encoded frames.
//
// # Quantization
//
// Latents and snapshots are transmitted as integer symbols. QuantizeLatents
// and QuantizeState map values to symbols at one of QuantLevels step sizes;
// dequantization depends only on the symbol and the fixed-point tables, so
// independently built encoders and decoders agree bit for bit. LatentWriter
// and LatentReader range-code the symbols with a Laplace model driven by the
// p0 and r tables.
//
// # Compatibility
//
// ModelID identifies the weights and tables a session runs. Peers should
// exchange it and call CheckCompatible before trusting each other's latents.
//
// Encoders and decoders are not safe for concurrent use; run one per
// stream. The tables and the default model are read-only and shared.
package dred
