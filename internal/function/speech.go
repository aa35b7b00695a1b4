package function

import (
	"context"
	"log/slog"

	"github.com/wickes36/golf/internal/domain/caddy"
	"github.com/wickes36/golf/internal/httperror"
	"github.com/wickes36/golf/internal/metrics"
)

// SpeechService 는 음성 합성 use case 다.
type SpeechService interface {
	Ready() error
	Synthesize(ctx context.Context, req caddy.SpeechRequest) (string, error)
}

// Speech 는 {"text": ...} 를 받아 {"audioData": <base64>} 를 돌려주는 함수다.
type Speech struct {
	endpoint
	service SpeechService
}

// NewSpeech 는 음성 함수를 생성한다.
func NewSpeech(service SpeechService, metricsStore *metrics.Store, logger *slog.Logger) *Speech {
	return &Speech{
		endpoint: newEndpoint(NameSpeech, httperror.PrefixSpeech, "tts_request_failed", metricsStore, logger),
		service:  service,
	}
}

// Name 은 함수 이름을 반환한다.
func (f *Speech) Name() string { return f.name }

// Invoke 는 요청 하나를 처리한다. API 키가 없으면 본문을 보기 전에 실패한다.
func (f *Speech) Invoke(ctx context.Context, req Request) Response {
	return f.serve(ctx, req, func(ctx context.Context, body []byte) (any, error) {
		if err := f.service.Ready(); err != nil {
			return nil, err
		}
		speechReq, err := caddy.DecodeSpeechRequest(body)
		if err != nil {
			return nil, err
		}
		audio, err := f.service.Synthesize(ctx, speechReq)
		if err != nil {
			return nil, err
		}
		return caddy.SpeechResponse{AudioData: audio}, nil
	})
}
