package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/health"
)

// ModelConfigResponse: 모델 설정 응답입니다.
type ModelConfigResponse struct {
	TipModel       string `json:"tip_model"`
	SpeechModel    string `json:"speech_model"`
	SpeechVoice    string `json:"speech_voice"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	HTTP2Enabled   bool   `json:"http2_enabled"`
	TransportMode  string `json:"transport_mode"`
}

// RegisterHealthRoutes: 상태 확인/메트릭 라우트를 등록합니다.
func RegisterHealthRoutes(router gin.IRoutes, cfg *config.Config, gatherer prometheus.Gatherer) {
	// liveness 는 항상 200 이다. 준비 상태는 /health/ready 로 본다.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, health.Collect(cfg))
	})

	router.GET("/health/ready", func(c *gin.Context) {
		payload := health.Collect(cfg)
		status := http.StatusOK
		if !payload.IsReady() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, payload)
	})

	router.GET("/health/models", func(c *gin.Context) {
		transportMode := "h1"
		if cfg.HTTP.HTTP2Enabled {
			transportMode = "h2c"
		}
		c.JSON(http.StatusOK, ModelConfigResponse{
			TipModel:       cfg.Gemini.TipModel,
			SpeechModel:    cfg.Gemini.SpeechModel,
			SpeechVoice:    cfg.Gemini.SpeechVoice,
			TimeoutSeconds: cfg.Gemini.TimeoutSeconds,
			HTTP2Enabled:   cfg.HTTP.HTTP2Enabled,
			TransportMode:  transportMode,
		})
	})

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
