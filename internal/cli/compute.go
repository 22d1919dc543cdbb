package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/change_maker/pkg/flatfile"
	"github.com/spf13/cobra"
)

// NewCompute creates the command that turns a transactions file into a change file.
func NewCompute(params *CmdParams) *cobra.Command {
	var input, output string

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute change for every transaction in a file",
		Long: `Reads "<owed>,<paid>" lines and writes one line per transaction listing the
coins and notes to hand back, e.g. "3 quarters,1 dime,2 pennies".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flatfile.CheckInput(input); err != nil {
				return err
			}
			if output == "" {
				output = flatfile.DefaultOutputPath(input)
			}
			if err := flatfile.CheckOutput(input, output); err != nil {
				return err
			}

			a, ctx, err := bootstrap(cmd.Context(), params.Viper, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("failed to open input file: %w", err)
			}
			defer f.Close()

			res, runErr := a.services.Batch.ProcessLines(ctx, f, a.cfg.CurrencyCode)
			if res == nil {
				return runErr
			}

			if err := flatfile.WriteLines(output, res.Lines); err != nil {
				return err
			}
			if len(res.Lines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No valid transactions; no output file written")
			} else {
				a.logger.Info("Output written", slog.String("path", output), slog.String("run_id", res.RunID))
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d lines to %s\n", len(res.Lines), output)
			}

			if runErr != nil {
				return fmt.Errorf("%d invalid lines skipped: %w", res.Skipped, runErr)
			}
			return nil
		},
	}

	flags := computeCmd.Flags()
	flags.StringVarP(&input, "file", "f", "", "transactions file, one \"<owed>,<paid>\" per line")
	flags.StringVarP(&output, "output", "o", "", "output file (default <input>_change.txt)")
	flags.String("error-mode", "fail_fast", "fail_fast aborts on the first bad line, collect skips bad lines")
	flags.Int("workers", 1, "transactions decomposed in parallel")
	flags.Uint64("seed", 0, "seed for randomized change, 0 for a fresh one each run")
	_ = computeCmd.MarkFlagRequired("file")

	bindFlag(params.Viper, "ERROR_MODE", flags.Lookup("error-mode"))
	bindFlag(params.Viper, "WORKERS", flags.Lookup("workers"))
	bindFlag(params.Viper, "RANDOM_SEED", flags.Lookup("seed"))

	return computeCmd
}
