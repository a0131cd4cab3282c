package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thesyncim/dred"
	"github.com/thesyncim/dred/stats"
)

func newTablesCmd() *cobra.Command {
	var (
		state bool
		level int
	)
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Dump quantization and entropy tables",
		Long: `Print the per-dimension tables of one quantization level: the zero
probability p0, the magnitude decay r, the dead zone and the resulting
quantization step.

Examples:
  dredtool tables --level 8
  dredtool tables --state --level 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if level < 0 || level >= dred.QuantLevels {
				return fmt.Errorf("%w: %d", dred.ErrInvalidQuantLevel, level)
			}
			set := stats.Latent
			if state {
				set = stats.State
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "table %s, level %d (scale %.3f), fingerprint %016x\n",
				set.Name(), level, float64(stats.LevelScale(level))/dred.LevelScaleScale, set.Fingerprint())

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "dim\tp0\tr\tdead_zone\tstep\t")
			for i := 0; i < set.Dim(); i++ {
				fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.3f\t%.5f\t\n", i,
					float64(set.P0(level, i))/dred.ProbScale,
					float64(set.R(i))/dred.ProbScale,
					float64(set.DeadZone(i))/dred.DeadZoneScale,
					set.Step(level, i))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&state, "state", false, "dump the initial-state tables instead of the latent tables")
	cmd.Flags().IntVarP(&level, "level", "q", 0, "quantization level")
	return cmd
}
