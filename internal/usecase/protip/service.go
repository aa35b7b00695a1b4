package protip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/domain/caddy"
	"github.com/wickes36/golf/internal/gemini"
)

// Service: 홀 레이아웃으로 캐디 팁을 생성하는 비즈니스 로직입니다.
type Service struct {
	cfg       config.GeminiConfig
	generator gemini.ContentGenerator
	prompts   *caddy.Prompts
	logger    *slog.Logger
}

// New: 팁 Service 인스턴스를 생성합니다.
func New(cfg *config.Config, generator gemini.ContentGenerator, prompts *caddy.Prompts, logger *slog.Logger) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if generator == nil {
		return nil, errors.New("content generator is nil")
	}
	if prompts == nil {
		return nil, errors.New("prompts is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg.Gemini,
		generator: generator,
		prompts:   prompts,
		logger:    logger,
	}, nil
}

// Ready 는 업스트림 호출에 필요한 자격 증명이 있는지 확인한다.
func (s *Service) Ready() error {
	if !s.cfg.HasAPIKey() {
		return gemini.ErrMissingAPIKey
	}
	return nil
}

// Tip 은 generateContent 한 번으로 팁 텍스트를 얻는다.
// API 키가 없으면 업스트림을 호출하지 않고 바로 실패한다.
func (s *Service) Tip(ctx context.Context, req caddy.TipRequest) (string, error) {
	if err := s.Ready(); err != nil {
		return "", err
	}

	userPrompt, err := s.prompts.TipUser(req)
	if err != nil {
		return "", fmt.Errorf("build tip prompt: %w", err)
	}

	if timeout := s.cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	generateConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(s.prompts.TipSystem(), genai.RoleUser),
	}
	response, err := s.generator.GenerateContent(ctx, s.cfg.TipModel, genai.Text(userPrompt), generateConfig)
	if err != nil {
		return "", fmt.Errorf("generate tip: %w", err)
	}

	tip, err := gemini.FirstText(response)
	if err != nil {
		return "", fmt.Errorf("extract tip: %w", err)
	}

	s.logger.Debug("tip_generated", "model", s.cfg.TipModel, "hole", req.HoleNumber, "chars", len(tip))
	return tip, nil
}
