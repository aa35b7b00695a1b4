package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/logging"
	"github.com/wickes36/golf/internal/telemetry"
)

// ProvideLogger: 로거를 구성해 반환합니다.
// OTel 이 활성화된 경우 로그에 trace_id/span_id 가 자동으로 추가됩니다.
func ProvideLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewLoggerWithOTel(cfg.Logging, cfg.Telemetry.Enabled)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// ProvideTelemetry: 설정에 따라 TracerProvider 를 초기화합니다.
func ProvideTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Provider, error) {
	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}
	return provider, nil
}

// ProvideGatherer: /metrics 가 노출할 레지스트리입니다. metrics.ProvideStore 와 같은 기본 레지스트리를 씁니다.
func ProvideGatherer() prometheus.Gatherer {
	return prometheus.DefaultGatherer
}
