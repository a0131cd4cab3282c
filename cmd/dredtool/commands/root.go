package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the dredtool command tree. Each call returns a
// fresh tree with its own flag state.
func NewRootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "dredtool",
		Short: "DRED latent coder tool",
		Long: `dredtool inspects the DRED quantization tables and RDOVAE models, and
runs feature streams through the full encode, quantize, entropy-code and
decode path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newTablesCmd())
	root.AddCommand(newModelCmd())
	root.AddCommand(newRoundtripCmd())
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
