package health

import (
	"runtime"
	"time"

	"github.com/wickes36/golf/internal/config"
)

var startTime = time.Now()

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// Component 는 상태 구성 요소다.
type Component struct {
	Status string         `json:"status"`
	Detail map[string]any `json:"detail"`
}

// Response 는 상태 응답 본문이다.
type Response struct {
	Status     string               `json:"status"`
	Components map[string]Component `json:"components"`
}

// Collect 는 헬스 상태를 수집한다. 외부 호출은 하지 않는다.
// API 키가 없으면 모든 호출이 실패하므로 gemini 구성 요소를 degraded 로 본다.
func Collect(cfg *config.Config) Response {
	components := map[string]Component{
		"app":    buildAppStatus(),
		"gemini": buildGeminiStatus(cfg),
	}

	overall := statusOK
	for _, component := range components {
		if component.Status != statusOK {
			overall = statusDegraded
			break
		}
	}

	return Response{Status: overall, Components: components}
}

// IsReady 는 응답이 트래픽을 받을 수 있는 상태인지 확인한다.
func (r Response) IsReady() bool {
	return r.Status == statusOK
}

func buildAppStatus() Component {
	return Component{
		Status: statusOK,
		Detail: map[string]any{
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"goroutines":     runtime.NumGoroutine(),
		},
	}
}

func buildGeminiStatus(cfg *config.Config) Component {
	var gemini config.GeminiConfig
	if cfg != nil {
		gemini = cfg.Gemini
	}

	status := statusOK
	if !gemini.HasAPIKey() {
		status = statusDegraded
	}

	return Component{
		Status: status,
		Detail: map[string]any{
			"api_key_present": gemini.HasAPIKey(),
			"tip_model":       gemini.TipModel,
			"speech_model":    gemini.SpeechModel,
			"speech_voice":    gemini.SpeechVoice,
			"timeout_seconds": gemini.TimeoutSeconds,
		},
	}
}
