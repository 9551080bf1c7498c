package serve

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"s3-audio-translate/cmd/atx/cmd/cmdutil"
	"s3-audio-translate/internal/app"
)

var port string

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default $HTTP_PORT or 8080)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transcription web app",
	Long: `Run the transcription web app.

- New visitors land on the registration form
- After logging in, pick an audio file from the bucket and an optional language
- The transcript (and translation) can be downloaded as text files`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := cmdutil.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if port != "" {
			cfg.Server.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		ctx, stop := cmdutil.SignalContext()
		defer stop()

		srv, cleanup, err := app.InitializeAppServer(ctx, cfg, logger)
		if err != nil {
			logger.Error("failed to initialize app server", zap.Error(err))
			return err
		}
		defer cleanup()

		return srv.Run(ctx)
	},
}
