package files

import (
	"fmt"

	"github.com/spf13/cobra"

	"s3-audio-translate/cmd/atx/cmd/cmdutil"
	"s3-audio-translate/internal/app"
)

// Cmd represents the files command
var Cmd = &cobra.Command{
	Use:   "files",
	Short: "List the audio files in the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := cmdutil.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		store, err := app.InitializeObjectStore(cfg, logger)
		if err != nil {
			return err
		}

		keys, err := store.ListAudioFiles(cmd.Context())
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}
