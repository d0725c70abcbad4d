// Package cli wires the joaat commands together.
package cli

import (
	"errors"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Blackdeer1524/joaat/src"
	"github.com/Blackdeer1524/joaat/src/app"
	"github.com/Blackdeer1524/joaat/src/joaat"
	"github.com/Blackdeer1524/joaat/src/pkg/utils"
)

var ErrNotPreimage = errors.New("not every candidate is a preimage")

// CLI carries state shared by all commands.
type CLI struct {
	Fs       afero.Fs
	EnvFiles []string

	env app.Env
	log src.Logger
}

func New() *CLI {
	return &CLI{Fs: afero.NewOsFs()}
}

func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "joaat",
		Short:         "Hash with Jenkins one_at_a_time and enumerate its preimages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.LoadEnv(c.EnvFiles...)
			if err != nil {
				return err
			}
			c.env = env

			if c.log == nil {
				c.log = app.NewLogger(env.Environment)
			}

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringSliceVar(&c.EnvFiles, "env-file", nil, "dotenv files to load (default .env)")

	root.AddCommand(
		c.hashCommand(),
		c.reverseCommand(),
		c.checkCommand(),
		c.serveCommand(),
		c.alphabetsCommand(),
	)

	return root
}

// alphabet resolves the --alphabet flag, falling back to the configured
// default when the flag is empty.
func (c *CLI) alphabet(raw string) (joaat.Alphabet, error) {
	if raw == "" {
		return c.env.SearchAlphabet(), nil
	}

	return joaat.ResolveAlphabet(raw)
}

// targetValue is a pflag.Value holding a hash in decimal or hex form.
type targetValue struct {
	value uint32
	set   bool
}

var _ pflag.Value = (*targetValue)(nil)

func (t *targetValue) String() string {
	if !t.set {
		return ""
	}

	return utils.FormatHex(t.value)
}

func (t *targetValue) Set(s string) error {
	v, err := utils.ParseUint32(s)
	if err != nil {
		return err
	}
	t.value, t.set = v, true

	return nil
}

func (t *targetValue) Type() string { return "hash" }
