// Package workflow runs download -> transcribe -> optional translate for one
// selected audio file and turns the result into downloadable artifacts.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"s3-audio-translate/internal/app/api"
	apperrors "s3-audio-translate/internal/app/errors"
	"s3-audio-translate/internal/app/model"
	"s3-audio-translate/internal/app/session"
	"s3-audio-translate/internal/app/storage"
)

// Stage names a step of the workflow
type Stage string

const (
	StageDownload   Stage = "download"
	StageTranscribe Stage = "transcribe"
	StageTranslate  Stage = "translate"
)

// Runner executes the workflow synchronously; one call per user action.
type Runner struct {
	// sem serialises runs: the temp path is unique per process, not per run.
	sem chan struct{}

	store       storage.ObjectStore
	transcriber api.Transcriber
	translator  api.Translator
	tempDir     string
	cleanup     bool
	pid         func() int
	metrics     *Metrics
	logger      *zap.Logger
	onStage     StageHook
}

// Option configures a Runner
type Option func(*Runner)

// WithTempDir sets the directory for downloaded audio. Defaults to os.TempDir().
func WithTempDir(dir string) Option {
	return func(r *Runner) { r.tempDir = dir }
}

// WithCleanup removes the downloaded file once the run finishes.
func WithCleanup(cleanup bool) Option {
	return func(r *Runner) { r.cleanup = cleanup }
}

// WithMetrics records runs and stage durations
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// StageHook is called before each stage starts.
type StageHook func(Stage)

// WithStageHook sets the stage hook. A nil hook is ignored.
func WithStageHook(fn StageHook) Option {
	return func(r *Runner) {
		if fn != nil {
			r.onStage = fn
		}
	}
}

// WithPID overrides the process id used to name the temp file.
func WithPID(fn func() int) Option {
	return func(r *Runner) { r.pid = fn }
}

// NewRunner creates a Runner. translator may be nil, in which case only
// untranslated runs succeed.
func NewRunner(store storage.ObjectStore, transcriber api.Transcriber, translator api.Translator, opts ...Option) *Runner {
	r := &Runner{
		sem:         make(chan struct{}, 1),
		store:       store,
		transcriber: transcriber,
		translator:  translator,
		tempDir:     os.TempDir(),
		pid:         os.Getpid,
		metrics:     NewMetrics(nil),
		logger:      zap.NewNop(),
		onStage:     func(Stage) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TempPath is the local copy of key for process pid.
func TempPath(dir string, pid int, key string) string {
	return filepath.Join(dir, fmt.Sprintf("temp_audio_%d%s", pid, filepath.Ext(key)))
}

// ListAudioFiles lists selectable files for an authenticated session.
func (r *Runner) ListAudioFiles(ctx context.Context, s session.Session) ([]string, error) {
	if err := session.RequireAuthenticated(s); err != nil {
		return nil, err
	}
	return r.store.ListAudioFiles(ctx)
}

// Run executes the workflow for fileKey. targetLanguage is a translation
// target such as "Hindi", or "" for no translation. Every failure after the
// session check is reported as errors.WorkflowFailed and no partial result
// is returned.
func (r *Runner) Run(ctx context.Context, s session.Session, fileKey, targetLanguage string) (*model.TranscriptResult, error) {
	if err := session.RequireAuthenticated(s); err != nil {
		return nil, err
	}

	select {
	case r.sem <- struct{}{}:
		defer func() { <-r.sem }()
	case <-ctx.Done():
		r.logger.Info("workflow cancelled while waiting", zap.String("file_key", fileKey))
		return nil, apperrors.WorkflowFailed(ctx.Err())
	}

	translate := targetLanguage != ""
	result, err := r.run(ctx, fileKey, targetLanguage)
	if err != nil {
		r.metrics.observeRun("failure", translate)
		r.logger.Warn("workflow failed",
			zap.String("file_key", fileKey),
			zap.String("target_language", targetLanguage),
			zap.Error(err),
		)
		return nil, apperrors.WorkflowFailed(err)
	}

	r.metrics.observeRun("success", translate)
	r.logger.Info("workflow complete",
		zap.String("file_key", fileKey),
		zap.String("target_language", targetLanguage),
		zap.Int("transcript_chars", len(result.OriginalText)),
	)
	return result, nil
}

func (r *Runner) run(ctx context.Context, fileKey, targetLanguage string) (*model.TranscriptResult, error) {
	if strings.TrimSpace(fileKey) == "" {
		return nil, apperrors.ErrEmptyFileKey
	}
	if targetLanguage != "" && r.translator == nil {
		return nil, errors.New("translation is not configured")
	}

	listed, err := r.store.ListAudioFiles(ctx)
	if err != nil {
		return nil, err
	}
	if !lo.Contains(listed, fileKey) {
		return nil, apperrors.ErrFileNotListed
	}

	audio := model.AudioFile{Key: fileKey, LocalPath: TempPath(r.tempDir, r.pid(), fileKey)}

	if err := r.stage(StageDownload, func() error {
		return r.store.Download(ctx, audio.Key, audio.LocalPath)
	}); err != nil {
		return nil, err
	}
	if r.cleanup {
		defer func() {
			if err := os.Remove(audio.LocalPath); err != nil && !os.IsNotExist(err) {
				r.logger.Warn("failed to remove temp file", zap.String("path", audio.LocalPath), zap.Error(err))
			}
		}()
	}

	result := &model.TranscriptResult{FileKey: fileKey}

	if err := r.stage(StageTranscribe, func() error {
		text, err := r.transcriber.Transcribe(ctx, audio.LocalPath)
		result.OriginalText = text
		return err
	}); err != nil {
		return nil, err
	}

	if targetLanguage == "" {
		return result, nil
	}

	if err := r.stage(StageTranslate, func() error {
		text, err := r.translator.Translate(ctx, result.OriginalText, targetLanguage)
		result.TranslatedText = text
		return err
	}); err != nil {
		return nil, err
	}
	result.TargetLanguage = targetLanguage
	return result, nil
}

func (r *Runner) stage(stage Stage, fn func() error) error {
	r.onStage(stage)
	start := time.Now()
	err := fn()
	r.metrics.observeStage(stage, time.Since(start).Seconds())
	return err
}
