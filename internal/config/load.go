package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load 는 환경 변수 기반 설정을 로드한다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig 는 설정을 로드하고 검증한다.
// API 키 누락은 여기서 실패시키지 않는다. 호출마다 즉시 실패로 보고된다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 는 설정 유효성을 검사한다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Gemini.TipModel) == "" {
		return errors.New("tip model is empty")
	}
	if strings.TrimSpace(c.Gemini.SpeechModel) == "" {
		return errors.New("speech model is empty")
	}
	if strings.TrimSpace(c.Gemini.SpeechVoice) == "" {
		return errors.New("speech voice is empty")
	}
	switch c.Lambda.Function {
	case "", "tip", "tts":
	default:
		return fmt.Errorf("unknown lambda function: %s", c.Lambda.Function)
	}
	return nil
}

// LogEnvStatus 는 환경 설정 상태를 로그로 남긴다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	logger.Debug(
		"env_status",
		"env_file", fileExists(".env"),
		"api_key", maskSecret(cfg.Gemini.APIKey),
		"tip_model", cfg.Gemini.TipModel,
		"tts_model", cfg.Gemini.SpeechModel,
		"tts_voice", cfg.Gemini.SpeechVoice,
		"timeout", cfg.Gemini.TimeoutSeconds,
		"base_url", cfg.Gemini.BaseURL,
		"otel", cfg.Telemetry.Enabled,
	)

	if !cfg.Gemini.HasAPIKey() {
		logger.Error("env_missing_gemini_api_key")
	}
}

func buildConfig() *Config {
	return &Config{
		Gemini:        readGeminiConfig(),
		Logging:       readLoggingConfig(),
		HTTP:          readHTTPConfig(),
		HTTPAuth:      HTTPAuthConfig{APIKey: getEnvString("HTTP_API_KEY", "")},
		HTTPRateLimit: readRateLimitConfig(),
		Telemetry:     readTelemetryConfig(),
		Lambda:        LambdaConfig{Function: strings.ToLower(getEnvString("CADDY_FUNCTION", ""))},
	}
}
