package di

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/lambda"
	"github.com/wickes36/golf/internal/telemetry"
)

// App: HTTP 서버 구성 요소를 묶는다.
type App struct {
	Server    *http.Server
	Logger    *slog.Logger
	Config    *config.Config
	Telemetry *telemetry.Provider
}

// NewApp: App 인스턴스를 생성합니다.
func NewApp(server *http.Server, logger *slog.Logger, cfg *config.Config, provider *telemetry.Provider) *App {
	return &App{
		Server:    server,
		Logger:    logger,
		Config:    cfg,
		Telemetry: provider,
	}
}

// Close: 남은 span 을 flush 합니다.
func (a *App) Close(ctx context.Context) {
	if err := a.Telemetry.Shutdown(ctx); err != nil {
		a.Logger.Warn("telemetry_shutdown_failed", "err", err)
	}
}

// LambdaApp: Lambda 진입점 구성 요소를 묶는다.
type LambdaApp struct {
	Handler   *lambda.Handler
	Logger    *slog.Logger
	Config    *config.Config
	Telemetry *telemetry.Provider
}

// NewLambdaApp: LambdaApp 인스턴스를 생성합니다.
func NewLambdaApp(handler *lambda.Handler, logger *slog.Logger, cfg *config.Config, provider *telemetry.Provider) *LambdaApp {
	return &LambdaApp{
		Handler:   handler,
		Logger:    logger,
		Config:    cfg,
		Telemetry: provider,
	}
}
