package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"s3-audio-translate/internal/api/render"
	"s3-audio-translate/internal/api/server"
	"s3-audio-translate/internal/api/v1/handlers"
	"s3-audio-translate/internal/app/api"
	"s3-audio-translate/internal/app/api/gemini"
	"s3-audio-translate/internal/app/api/openai"
	"s3-audio-translate/internal/app/api/openai/chat"
	"s3-audio-translate/internal/app/api/openai/whisper"
	"s3-audio-translate/internal/app/auth"
	"s3-audio-translate/internal/app/language"
	"s3-audio-translate/internal/app/repository"
	"s3-audio-translate/internal/app/repository/pg"
	"s3-audio-translate/internal/app/repository/sqlite"
	"s3-audio-translate/internal/app/session"
	"s3-audio-translate/internal/app/storage"
	"s3-audio-translate/internal/app/workflow"
	"s3-audio-translate/internal/config"
)

// provideAccountStore opens the credential store selected by DB_DRIVER
func provideAccountStore(ctx context.Context, cfg *config.Config) (*repository.CommonDB, func(), error) {
	var (
		store *repository.CommonDB
		err   error
	)
	switch cfg.Database.Driver {
	case "postgres":
		store, err = pg.NewAccountStore(ctx, cfg.Database.DSN)
	default:
		store, err = sqlite.NewAccountStore(ctx, cfg.Database.DSN)
	}
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

func provideAuthenticator(accounts repository.AccountDAO, logger *zap.Logger) *auth.Service {
	return auth.NewService(accounts, auth.WithLogger(logger))
}

func provideObjectStore(cfg *config.Config, logger *zap.Logger) (*storage.MinioStore, error) {
	return storage.NewMinioStore(storage.MinioConfig{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Prefix:    cfg.Storage.Prefix,
		UseSSL:    cfg.Storage.UseSSL,
	}, logger)
}

func provideOpenAIClient(cfg *config.Config) *goopenai.Client {
	return openai.NewClient(openai.ClientConfig{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
	})
}

// provideTranscriber with openai's remote service conversion, must set environment variable OPENAI_API_KEY
func provideTranscriber(client *goopenai.Client) api.Transcriber {
	return whisper.NewRemoteTranscriber(client)
}

// provideTranslator picks the translation backend from TRANSLATION_PROVIDER
func provideTranslator(ctx context.Context, cfg *config.Config, client *goopenai.Client) (api.Translator, error) {
	switch cfg.TranslationProvider {
	case "gemini":
		return gemini.NewTranslator(ctx, gemini.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		})
	case "openai", "":
		return chat.NewTranslator(client, cfg.OpenAI.ChatModel), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.TranslationProvider)
	}
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideRunner(
	cfg *config.Config,
	store storage.ObjectStore,
	transcriber api.Transcriber,
	translator api.Translator,
	reg *prometheus.Registry,
	hook workflow.StageHook,
	logger *zap.Logger,
) *workflow.Runner {
	return workflow.NewRunner(store, transcriber, translator,
		workflow.WithTempDir(cfg.Workflow.TempDir),
		workflow.WithCleanup(cfg.Workflow.CleanupTemp),
		workflow.WithMetrics(workflow.NewMetrics(reg)),
		workflow.WithStageHook(hook),
		workflow.WithLogger(logger),
	)
}

// provideNoStageHook is used by the app server, which reports progress
// through the page rather than a terminal.
func provideNoStageHook() workflow.StageHook {
	return nil
}

// provideSessionStore keeps sessions in memory or, with SESSION_STORE=redis,
// in Redis so several app server processes can share them.
func provideSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	if cfg.Session.Store != "redis" {
		return session.NewMemoryStore(cfg.Session.TTL), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Session.RedisAddr,
		Password: cfg.Session.RedisPassword,
		DB:       cfg.Session.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Session.RedisAddr, err)
	}
	return session.NewRedisStore(client, cfg.Session.TTL), func() { _ = client.Close() }, nil
}

func provideMachine(authenticator auth.Authenticator, logger *zap.Logger) *session.Machine {
	return session.NewMachine(authenticator, logger)
}

func provideLanguages(cfg *config.Config) *language.Table {
	return language.NewTable(cfg.Languages)
}

func provideAppServer(
	cfg *config.Config,
	page *handlers.PageHandler,
	store session.Store,
	reg *prometheus.Registry,
	logger *zap.Logger,
) *server.Server {
	return server.NewAppServer(server.Config{
		ServerConfig: cfg.Server,
		Environment:  cfg.Environment,
		SessionTTL:   cfg.Session.TTL,
	}, page, store, reg, logger)
}

func provideHelloServer(cfg *config.Config, logger *zap.Logger) *server.Server {
	return server.NewHelloServer(server.Config{
		ServerConfig: cfg.Hello,
		Environment:  cfg.Environment,
	}, logger)
}

func provideRenderer() (*render.Renderer, error) {
	return render.New()
}
