//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"s3-audio-translate/internal/api/server"
	"s3-audio-translate/internal/api/v1/handlers"
	"s3-audio-translate/internal/app/auth"
	"s3-audio-translate/internal/app/repository"
	"s3-audio-translate/internal/app/storage"
	"s3-audio-translate/internal/app/workflow"
	"s3-audio-translate/internal/config"
)

var authSet = wire.NewSet(
	provideAccountStore,
	wire.Bind(new(repository.AccountDAO), new(*repository.CommonDB)),
	provideAuthenticator,
	wire.Bind(new(auth.Authenticator), new(*auth.Service)),
)

var workflowSet = wire.NewSet(
	provideObjectStore,
	wire.Bind(new(storage.ObjectStore), new(*storage.MinioStore)),
	provideOpenAIClient,
	provideTranscriber,
	provideTranslator,
	provideRunner,
)

func InitializeAppServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*server.Server, func(), error) {
	wire.Build(
		authSet,
		workflowSet,
		provideRegistry,
		provideNoStageHook,
		provideSessionStore,
		provideMachine,
		provideLanguages,
		provideRenderer,
		handlers.NewPageHandler,
		provideAppServer,
	)
	return nil, nil, nil
}

func InitializeHelloServer(cfg *config.Config, logger *zap.Logger) *server.Server {
	wire.Build(provideHelloServer)
	return nil
}

func InitializeAuthenticator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*auth.Service, func(), error) {
	wire.Build(authSet)
	return nil, nil, nil
}

func InitializeObjectStore(cfg *config.Config, logger *zap.Logger) (*storage.MinioStore, error) {
	wire.Build(provideObjectStore)
	return nil, nil
}

func InitializeRunner(ctx context.Context, cfg *config.Config, hook workflow.StageHook, logger *zap.Logger) (*workflow.Runner, error) {
	wire.Build(workflowSet, provideRegistry)
	return nil, nil
}
