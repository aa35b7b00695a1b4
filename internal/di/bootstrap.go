//go:build !wireinject

package di

import (
	"context"
	"fmt"
	"log/slog"

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

// Functions 는 두 호출 함수를 묶는다.
type Functions struct {
	Tip    *function.Tip
	Speech *function.Speech
}

// InitializeApp 은 HTTP 서버 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp(ctx context.Context) (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	provider, err := ProvideTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	functions, err := initializeFunctions(cfg, logger)
	if err != nil {
		return nil, err
	}

	router := handler.NewRouter(cfg, logger, ProvideGatherer(), functions.Tip, functions.Speech)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, provider), nil
}

// InitializeLambda 는 Lambda 진입점 의존성을 초기화한다.
func InitializeLambda(ctx context.Context) (*LambdaApp, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	provider, err := ProvideTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	functions, err := initializeFunctions(cfg, logger)
	if err != nil {
		return nil, err
	}

	return NewLambdaApp(lambda.NewHandler(cfg, functions.Tip, functions.Speech, logger), logger, cfg, provider), nil
}

func initializeFunctions(cfg *config.Config, logger *slog.Logger) (*Functions, error) {
	metricsStore, err := metrics.ProvideStore()
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	geminiClient, err := gemini.NewClient(cfg, metricsStore)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	prompts, err := caddy.NewPrompts()
	if err != nil {
		return nil, fmt.Errorf("caddy prompts: %w", err)
	}

	tipService, err := protip.New(cfg, geminiClient, prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("tip service: %w", err)
	}

	speechService, err := speech.New(cfg, geminiClient, logger)
	if err != nil {
		return nil, fmt.Errorf("speech service: %w", err)
	}

	return &Functions{
		Tip:    function.NewTip(tipService, metricsStore, logger),
		Speech: function.NewSpeech(speechService, metricsStore, logger),
	}, nil
}
