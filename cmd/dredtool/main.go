// Command dredtool inspects and exercises the DRED latent coder.
//
// Usage:
//
//	dredtool [--verbose] <command> [args]
//
// Commands:
//
//	tables     - dump quantization and entropy tables
//	model      - export or inspect RDOVAE model assets
//	roundtrip  - encode, quantize, code and decode a feature stream
package main

import (
	"fmt"
	"os"

	"github.com/thesyncim/dred/cmd/dredtool/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
