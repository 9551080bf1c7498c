package hello

import (
	"github.com/spf13/cobra"

	"s3-audio-translate/cmd/atx/cmd/cmdutil"
	"s3-audio-translate/internal/app"
)

var port string

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default $HELLO_PORT or 5000)")
}

// Cmd represents the hello command
var Cmd = &cobra.Command{
	Use:   "hello",
	Short: "Run the placeholder API server",
	Long: `Run the placeholder API server.

GET /api/hello answers {"message": "Hello World"} to any origin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := cmdutil.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if port != "" {
			cfg.Hello.Port = port
		}

		ctx, stop := cmdutil.SignalContext()
		defer stop()

		return app.InitializeHelloServer(cfg, logger).Run(ctx)
	},
}
