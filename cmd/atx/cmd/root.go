package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"s3-audio-translate/cmd/atx/cmd/cmdutil"
	"s3-audio-translate/cmd/atx/cmd/files"
	"s3-audio-translate/cmd/atx/cmd/hello"
	"s3-audio-translate/cmd/atx/cmd/serve"
	"s3-audio-translate/cmd/atx/cmd/transcribe"
	"s3-audio-translate/cmd/atx/cmd/user"
	"s3-audio-translate/cmd/atx/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "atx",
	Short: "Transcribe and translate audio files stored in S3",
	Long: `Transcribe and translate audio files stored in an S3-compatible bucket.

- serve runs the web app: register, log in, pick a file, download the results
- hello runs the placeholder API server
- files, transcribe and user are the same operations from the terminal`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(hello.Cmd)
	rootCmd.AddCommand(files.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(user.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&cmdutil.Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&cmdutil.ConfigPath, "config", "", "YAML config file (default $ATX_CONFIG)")
}
