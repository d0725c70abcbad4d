package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/joaat/src/joaat"
	"github.com/Blackdeer1524/joaat/src/pkg/utils"
)

func (c *CLI) hashCommand() *cobra.Command {
	var decimal bool

	cmd := &cobra.Command{
		Use:   "hash INPUT...",
		Short: "Print the hash of each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, in := range args {
				h := joaat.SumString(in)

				value := utils.FormatHex(h)
				if decimal {
					value = fmt.Sprint(h)
				}
				fmt.Fprintf(out, "%s\t%s\n", value, in)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&decimal, "decimal", false, "print hashes in decimal")

	return cmd
}

func (c *CLI) alphabetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabets",
		Short: "List the built-in alphabets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range joaat.PresetNames() {
				a, _ := joaat.LookupPreset(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, a)
			}

			return nil
		},
	}
}
