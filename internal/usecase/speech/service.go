package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/domain/caddy"
	"github.com/wickes36/golf/internal/gemini"
)

const responseModalityAudio = "AUDIO"

// Service: 텍스트를 음성으로 합성하는 비즈니스 로직입니다.
type Service struct {
	cfg       config.GeminiConfig
	generator gemini.ContentGenerator
	logger    *slog.Logger
}

// New: 음성 Service 인스턴스를 생성합니다.
func New(cfg *config.Config, generator gemini.ContentGenerator, logger *slog.Logger) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if generator == nil {
		return nil, errors.New("content generator is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg.Gemini, generator: generator, logger: logger}, nil
}

// Ready 는 업스트림 호출에 필요한 자격 증명이 있는지 확인한다.
func (s *Service) Ready() error {
	if !s.cfg.HasAPIKey() {
		return gemini.ErrMissingAPIKey
	}
	return nil
}

// Synthesize 는 텍스트를 그대로 TTS 모델에 보내고 오디오를 base64 문자열로 돌려준다.
// SDK 가 디코딩한 바이트를 표준 base64 로 다시 인코딩하므로 업스트림 페이로드와 같다.
func (s *Service) Synthesize(ctx context.Context, req caddy.SpeechRequest) (string, error) {
	if err := s.Ready(); err != nil {
		return "", err
	}

	if timeout := s.cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	generateConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{responseModalityAudio},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.cfg.SpeechVoice},
			},
		},
	}
	response, err := s.generator.GenerateContent(ctx, s.cfg.SpeechModel, genai.Text(req.Text), generateConfig)
	if err != nil {
		return "", fmt.Errorf("generate speech: %w", err)
	}

	blob, err := gemini.FirstInlineData(response)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}

	s.logger.Debug("speech_generated", "model", s.cfg.SpeechModel, "mime_type", blob.MIMEType, "bytes", len(blob.Data))
	return base64.StdEncoding.EncodeToString(blob.Data), nil
}
