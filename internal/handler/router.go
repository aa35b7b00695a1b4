package handler

import (
	"log/slog"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/function"
	"github.com/wickes36/golf/internal/middleware"
)

// NewRouter 는 HTTP 라우터를 구성한다.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	gatherer prometheus.Gatherer,
	tip *function.Tip,
	speech *function.Speech,
) *gin.Engine {
	setGinMode(cfg.Logging.Level)

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		logger.Warn("http_trusted_proxies_invalid", "proxies", cfg.HTTP.TrustedProxies, "err", err)
		_ = router.SetTrustedProxies(nil)
	}
	if cfg.Telemetry.Enabled {
		router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		middleware.APIKeyAuth(cfg),
		middleware.RateLimit(cfg),
	)
	if cfg.HTTP.GzipEnabled {
		// base64 오디오 응답이 커서 압축 효과가 크다.
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/health", "/metrics"})))
	}

	RegisterHealthRoutes(router, cfg, gatherer)
	NewFunctionHandler(tip, cfg.HTTP.MaxBodyBytes).RegisterRoutes(router)
	NewFunctionHandler(speech, cfg.HTTP.MaxBodyBytes).RegisterRoutes(router)

	return router
}

func setGinMode(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
