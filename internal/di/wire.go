//go:build wireinject

package di

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/domain/caddy"
	"github.com/wickes36/golf/internal/function"
	"github.com/wickes36/golf/internal/gemini"
	"github.com/wickes36/golf/internal/handler"
	"github.com/wickes36/golf/internal/lambda"
	"github.com/wickes36/golf/internal/metrics"
	"github.com/wickes36/golf/internal/server"
	"github.com/wickes36/golf/internal/usecase/protip"
	"github.com/wickes36/golf/internal/usecase/speech"
)

var functionSet = wire.NewSet(
	config.ProvideConfig,
	ProvideLogger,
	ProvideTelemetry,
	metrics.ProvideStore,
	gemini.NewClient,
	wire.Bind(new(gemini.ContentGenerator), new(*gemini.Client)),
	caddy.NewPrompts,
	protip.New,
	speech.New,
	wire.Bind(new(function.TipService), new(*protip.Service)),
	wire.Bind(new(function.SpeechService), new(*speech.Service)),
	function.NewTip,
	function.NewSpeech,
)

func InitializeApp(ctx context.Context) (*App, error) {
	wire.Build(
		functionSet,
		ProvideGatherer,
		handler.NewRouter,
		wire.Bind(new(http.Handler), new(*gin.Engine)),
		server.NewHTTPServer,
		NewApp,
	)
	return nil, nil
}

func InitializeLambda(ctx context.Context) (*LambdaApp, error) {
	wire.Build(
		functionSet,
		lambda.NewHandler,
		NewLambdaApp,
	)
	return nil, nil
}
