package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Blackdeer1524/joaat/src/joaat"
	"github.com/Blackdeer1524/joaat/src/pkg/utils"
	"github.com/Blackdeer1524/joaat/src/report"
)

func (c *CLI) reverseCommand() *cobra.Command {
	var (
		length       int
		alphabetFlag string
		workers      int
		parallel     int
		format       string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "reverse TARGET...",
		Short: "Find every input of the given length that hashes to each TARGET",
		Long: "TARGET is a decimal or hexadecimal hash value. Preimages are printed " +
			"one per line, grouped by their last character.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := make([]uint32, len(args))
			for i, arg := range args {
				t, err := utils.ParseUint32(arg)
				if err != nil {
					return fmt.Errorf("target %d: %w", i+1, err)
				}
				targets[i] = t
			}

			alphabet, err := c.alphabet(alphabetFlag)
			if err != nil {
				return err
			}

			if err := joaat.Validate(length, alphabet); err != nil {
				return err
			}

			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = c.env.Workers
			}
			if !cmd.Flags().Changed("parallel") {
				parallel = c.env.ParallelTargets
			}

			searcher, err := joaat.NewSearcher(alphabet, workers, c.log)
			if err != nil {
				return err
			}
			defer searcher.Close()

			results := make([]report.Result, len(targets))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(parallel, 1))
			for i, target := range targets {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}

					started := time.Now()
					preimages := searcher.FindPreimages(target, length)
					c.log.Infow("search finished",
						"target", utils.FormatHex(target),
						"length", length,
						"preimages", len(preimages),
						"elapsed", time.Since(started),
					)

					results[i] = report.Result{
						Target:    target,
						Length:    length,
						Alphabet:  alphabet.String(),
						Preimages: preimages,
					}

					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			if output != "" {
				return report.WriteFile(c.Fs, output, f, results)
			}

			return report.Write(cmd.OutOrStdout(), f, results)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&length, "length", "n", 0, "exact input length to search for")
	flags.StringVarP(&alphabetFlag, "alphabet", "a", "", "preset name or literal characters (default from JOAAT_ALPHABET)")
	flags.IntVarP(&workers, "workers", "w", 0, "search pool size, 0 for GOMAXPROCS")
	flags.IntVarP(&parallel, "parallel", "p", 1, "targets searched at once")
	flags.StringVarP(&format, "format", "f", string(report.FormatText), "output format: text or json")
	flags.StringVarP(&output, "output", "o", "", "write results to a file instead of stdout")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}
