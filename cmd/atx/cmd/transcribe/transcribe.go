package transcribe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"s3-audio-translate/cmd/atx/cmd/cmdutil"
	"s3-audio-translate/internal/app"
	"s3-audio-translate/internal/app/export"
	"s3-audio-translate/internal/app/language"
	"s3-audio-translate/internal/app/model"
	"s3-audio-translate/internal/app/progress"
	"s3-audio-translate/internal/app/session"
	"s3-audio-translate/internal/app/workflow"
)

var (
	email         string
	password      string
	fileKey       string
	languageLabel string
	outputDir     string
	xlsxPath      string
	forceProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	Cmd.Flags().StringVarP(&password, "password", "P", "", "account password")
	Cmd.Flags().StringVarP(&fileKey, "key", "k", "", "object key of the audio file, see 'atx files'")
	Cmd.Flags().StringVarP(&languageLabel, "language", "l", language.NoTranslation, "translation language")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "directory for the downloaded text files")
	Cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the result to this Excel file")
	Cmd.Flags().BoolVar(&forceProgress, "progress", false, "show the progress bar even without a terminal")

	Cmd.MarkFlagRequired("email")
	Cmd.MarkFlagRequired("password")
	Cmd.MarkFlagRequired("key")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Log in, then transcribe and optionally translate one audio file",
	Long: `Log in, then transcribe and optionally translate one audio file

- The file is downloaded from the bucket to the temp directory
- The transcript is written as <key>_transcript.txt, or as <key>_original.txt
  and <key>_<Language>.txt when a language is chosen`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := cmdutil.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		ctx, stop := cmdutil.SignalContext()
		defer stop()

		authenticator, cleanup, err := app.InitializeAuthenticator(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		out := session.NewMachine(authenticator, logger).SubmitLogin(ctx, session.New(), email, password)
		if out.Err != nil {
			return errors.New(session.NoticeText(out.Err))
		}

		target, err := language.NewTable(cfg.Languages).Resolve(languageLabel)
		if err != nil {
			return err
		}

		total := 2
		if target != "" {
			total = 3
		}
		steps := progress.NewSteps(progress.Config{
			Enabled: progress.ShouldShowProgress(forceProgress),
			Writer:  cmd.ErrOrStderr(),
		}, total, fileKey)

		runner, err := app.InitializeRunner(ctx, cfg, func(stage workflow.Stage) {
			steps.Start(string(stage))
		}, logger)
		if err != nil {
			return err
		}

		result, err := runner.Run(ctx, out.Session, fileKey, target)
		steps.Finish(err == nil)
		if err != nil {
			return errors.New(session.NoticeText(err))
		}

		written, err := WriteArtifacts(outputDir, workflow.Artifacts(*result))
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}

		if xlsxPath != "" {
			if err := export.ToExcel([]model.TranscriptResult{*result}, xlsxPath); err != nil {
				return err
			}
			logger.Info("exported result", zap.String("path", xlsxPath))
			fmt.Fprintln(cmd.OutOrStdout(), xlsxPath)
		}
		return nil
	},
}

// WriteArtifacts writes each artifact into dir and returns the paths written
func WriteArtifacts(dir string, artifacts []model.Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(dir, a.Name)
		if err := os.WriteFile(path, a.Content, 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
