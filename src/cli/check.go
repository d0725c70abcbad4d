package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/joaat/src/joaat"
	"github.com/Blackdeer1524/joaat/src/report"
)

func (c *CLI) checkCommand() *cobra.Command {
	var (
		target       targetValue
		file         string
		alphabetFlag string
	)

	cmd := &cobra.Command{
		Use:   "check [CANDIDATE...] --target HASH",
		Short: "Verify that candidates hash to the target",
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := args
			if file != "" {
				fromFile, err := report.ReadCandidates(c.Fs, file)
				if err != nil {
					return err
				}
				candidates = append(candidates, fromFile...)
			}

			if len(candidates) == 0 {
				return errors.New("no candidates given")
			}

			var alphabet *joaat.Alphabet
			if alphabetFlag != "" {
				a, err := joaat.ResolveAlphabet(alphabetFlag)
				if err != nil {
					return err
				}
				alphabet = &a
			}

			failed := 0
			out := cmd.OutOrStdout()
			for _, cand := range candidates {
				verdict := "ok"
				switch {
				case !joaat.IsPreimage(cand, target.value):
					verdict = "mismatch"
				case alphabet != nil && !alphabet.Contains(cand):
					verdict = "outside alphabet"
				}

				if verdict != "ok" {
					failed++
				}
				fmt.Fprintf(out, "%s\t%s\n", cand, verdict)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d failed", ErrNotPreimage, failed, len(candidates))
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.VarP(&target, "target", "t", "hash the candidates must match, decimal or hex")
	flags.StringVar(&file, "file", "", "read additional candidates from a file, one per line")
	flags.StringVarP(&alphabetFlag, "alphabet", "a", "", "also require candidates to use only this alphabet")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
