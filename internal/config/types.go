package config

import (
	"strings"
	"time"
)

// 기본 모델/음성 값.
const (
	DefaultTipModel    = "gemini-2.5-flash-preview-05-20"
	DefaultSpeechModel = "gemini-2.5-flash-preview-tts"
	DefaultSpeechVoice = "Charon"
)

// GeminiConfig: Gemini 호출 설정입니다.
type GeminiConfig struct {
	APIKey         string
	TipModel       string
	SpeechModel    string
	SpeechVoice    string
	TimeoutSeconds int
	BaseURL        string
}

// HasAPIKey 는 API 키가 설정되어 있는지 반환한다.
func (g GeminiConfig) HasAPIKey() bool {
	return strings.TrimSpace(g.APIKey) != ""
}

// Timeout 는 업스트림 호출 제한 시간을 반환한다. 0 이하이면 제한이 없다.
func (g GeminiConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// LoggingConfig: 로깅 설정입니다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig: HTTP 서버 설정입니다.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
	GzipEnabled  bool
	MaxBodyBytes int64

	// TrustedProxies 가 비어 있으면 X-Forwarded-For 를 믿지 않고 RemoteAddr 를 클라이언트 IP 로 쓴다.
	TrustedProxies []string
}

// HTTPAuthConfig: API 키 인증 설정입니다.
type HTTPAuthConfig struct {
	APIKey string
}

// HTTPRateLimitConfig: 요청 제한 설정입니다.
type HTTPRateLimitConfig struct {
	RequestsPerMinute int
	CacheSize         int
	CacheTTLSeconds   int
}

// TelemetryConfig: OpenTelemetry 설정입니다.
type TelemetryConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string
	OTLPInsecure   bool
	SampleRate     float64
}

// LambdaConfig: Lambda 진입점 설정입니다.
// Function 이 비어 있으면 요청 경로로 함수를 고른다.
type LambdaConfig struct {
	Function string
}

// Config: 애플리케이션 전체 설정입니다.
type Config struct {
	Gemini        GeminiConfig
	Logging       LoggingConfig
	HTTP          HTTPConfig
	HTTPAuth      HTTPAuthConfig
	HTTPRateLimit HTTPRateLimitConfig
	Telemetry     TelemetryConfig
	Lambda        LambdaConfig
}
