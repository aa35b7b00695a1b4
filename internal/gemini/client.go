package gemini

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/metrics"
)

const tracerName = "github.com/wickes36/golf/internal/gemini"

// Client 는 genai SDK 로 generateContent 를 호출한다.
// SDK 클라이언트는 첫 호출 시 한 번 만들고 이후 재사용한다.
type Client struct {
	cfg     config.GeminiConfig
	metrics *metrics.Store
	mu      sync.Mutex
	client  *genai.Client
}

// NewClient 는 Gemini 클라이언트를 생성한다.
func NewClient(cfg *config.Config, metricsStore *metrics.Store) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if metricsStore == nil {
		return nil, errors.New("metrics store is nil")
	}
	return &Client{
		cfg:     cfg.Gemini,
		metrics: metricsStore,
	}, nil
}

// GenerateContent 는 모델에 generateContent 요청을 한 번 보낸다. 재시도는 하지 않는다.
func (c *Client) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	generateConfig *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "gemini.generate_content")
	defer span.End()
	span.SetAttributes(attribute.String("gemini.model", model))

	start := time.Now()
	client, err := c.sdkClient(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	response, err := client.Models.GenerateContent(ctx, model, contents, generateConfig)
	if err != nil {
		classified := classifyError(err)
		c.metrics.RecordUpstream(model, upstreamStatus(classified), time.Since(start))
		span.RecordError(classified)
		span.SetStatus(codes.Error, classified.Error())
		return nil, classified
	}

	c.metrics.RecordUpstream(model, "ok", time.Since(start))
	return response, nil
}

func (c *Client) sdkClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cfg.HasAPIKey() {
		return nil, ErrMissingAPIKey
	}
	if c.client != nil {
		return c.client, nil
	}

	httpOptions := genai.HTTPOptions{BaseURL: c.cfg.BaseURL}
	if timeout := c.cfg.Timeout(); timeout > 0 {
		httpOptions.Timeout = genai.Ptr(timeout)
	}

	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:      c.cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c.client = client
	return client, nil
}

func upstreamStatus(err error) string {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return fmt.Sprintf("%d", upstream.StatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "error"
}
