package config

import (
	"os"
	"strconv"
	"strings"
)

func readGeminiConfig() GeminiConfig {
	return GeminiConfig{
		APIKey:         readAPIKey(),
		TipModel:       getEnvString("GEMINI_TIP_MODEL", DefaultTipModel),
		SpeechModel:    getEnvString("GEMINI_TTS_MODEL", DefaultSpeechModel),
		SpeechVoice:    getEnvString("GEMINI_TTS_VOICE", DefaultSpeechVoice),
		TimeoutSeconds: getEnvNonNegativeInt("GEMINI_TIMEOUT", 30),
		BaseURL:        getEnvString("GEMINI_BASE_URL", ""),
	}
}

func readLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:      getEnvString("LOG_LEVEL", "info"),
		LogDir:     getEnvString("LOG_DIR", ""),
		MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 10),
		MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 10),
		MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
		Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
	}
}

func readHTTPConfig() HTTPConfig {
	return HTTPConfig{
		Host:           getEnvString("HTTP_HOST", "127.0.0.1"),
		Port:           getEnvInt("HTTP_PORT", 8888),
		HTTP2Enabled:   getEnvBool("HTTP2_ENABLED", true),
		GzipEnabled:    getEnvBool("HTTP_GZIP_ENABLED", true),
		MaxBodyBytes:   int64(max(1, getEnvNonNegativeInt("HTTP_MAX_BODY_BYTES", 1<<20))),
		TrustedProxies: getEnvList("HTTP_TRUSTED_PROXIES"),
	}
}

func readRateLimitConfig() HTTPRateLimitConfig {
	return HTTPRateLimitConfig{
		RequestsPerMinute: getEnvNonNegativeInt("HTTP_RATE_LIMIT_RPM", 0),
		CacheSize:         max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_SIZE", 10000)),
		CacheTTLSeconds:   max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_TTL_SECONDS", 120)),
	}
}

// readTelemetryConfig: OpenTelemetry 설정을 환경 변수에서 읽습니다.
func readTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:        getEnvBool("OTEL_ENABLED", false),
		ServiceName:    getEnvString("OTEL_SERVICE_NAME", "golf-caddy"),
		ServiceVersion: getEnvString("OTEL_SERVICE_VERSION", "1.0.0"),
		Environment:    getEnvString("OTEL_ENVIRONMENT", "production"),
		OTLPEndpoint:   getEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTLPInsecure:   getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		SampleRate:     getEnvFloat("OTEL_SAMPLE_RATE", 1.0),
	}
}

// readAPIKey 는 GEMINI_API_KEY 를 우선하고, 없으면 GOOGLE_API_KEY 를 사용한다.
func readAPIKey() string {
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
}

func getEnvString(key string, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func getEnvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvNonNegativeInt(key string, def int) int {
	value := getEnvInt(key, def)
	if value < 0 {
		return 0
	}
	return value
}

func getEnvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}

// getEnvList 는 쉼표로 구분된 값을 읽는다. 빈 항목은 버린다.
func getEnvList(key string) []string {
	var values []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func getEnvBool(key string, def bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "yes" || value == "y"
}

func maskSecret(value string) string {
	if value == "" {
		return "<missing>"
	}
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return value[:2] + "***" + value[len(value)-2:]
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
