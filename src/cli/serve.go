package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/joaat/src/app"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve hashing and preimage search over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			e := &app.APIEntrypoint{
				EnvFiles: c.EnvFiles,
				Configure: func(env *app.Env) {
					if cmd.Flags().Changed("host") {
						env.ServerHost = host
					}
					if cmd.Flags().Changed("port") {
						env.ServerPort = port
					}
				},
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := e.Init(ctx); err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, e.Close())
			}()

			errCh := make(chan error, 1)
			go func() { errCh <- e.Run(ctx) }()

			select {
			case <-ctx.Done():
				return nil
			case err := <-errCh:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (default from JOAAT_SERVER_HOST)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from JOAAT_SERVER_PORT)")

	return cmd
}
