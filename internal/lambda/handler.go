// Package lambda 는 API Gateway 프록시 이벤트를 함수 호출로 연결한다.
package lambda

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/function"
)

// Handler 는 API Gateway 이벤트 하나를 함수 하나로 라우팅한다.
type Handler struct {
	functions map[string]function.Handler
	pinned    string
	logger    *slog.Logger
}

// NewHandler 는 Lambda 핸들러를 생성한다. cfg.Lambda.Function 이 있으면 경로와 무관하게 그 함수만 호출한다.
func NewHandler(cfg *config.Config, tip *function.Tip, speech *function.Speech, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	pinned := ""
	if cfg != nil {
		pinned = cfg.Lambda.Function
	}
	return &Handler{
		functions: map[string]function.Handler{
			tip.Name():    tip,
			speech.Name(): speech,
		},
		pinned: pinned,
		logger: logger,
	}
}

// Handle 은 lambda.Start 에 넘기는 진입점이다. 오류는 항상 응답으로 표현하고 error 는 nil 이다.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	fn, ok := h.resolve(event.Path)
	if !ok {
		h.logger.WarnContext(ctx, "lambda_route_not_found",
			"path", event.Path,
			"request_id", event.RequestContext.RequestID,
		)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusNotFound,
			Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
			Body:       http.StatusText(http.StatusNotFound),
		}, nil
	}

	resp := fn.Invoke(ctx, function.Request{
		Method:    event.HTTPMethod,
		Path:      event.Path,
		RequestID: event.RequestContext.RequestID,
		Headers:   event.Headers,
		Body:      h.eventBody(ctx, event),
	})

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func (h *Handler) resolve(eventPath string) (function.Handler, bool) {
	if h.pinned != "" {
		fn, ok := h.functions[h.pinned]
		return fn, ok
	}
	name, ok := function.NameForPath(eventPath)
	if !ok {
		return nil, false
	}
	fn, ok := h.functions[name]
	return fn, ok
}

// eventBody 는 base64 본문을 디코딩한다. 디코딩에 실패하면 원문을 넘겨 JSON 파싱 단계에서 입력 오류가 되게 한다.
func (h *Handler) eventBody(ctx context.Context, event events.APIGatewayProxyRequest) []byte {
	if !event.IsBase64Encoded {
		return []byte(event.Body)
	}
	decoded, err := base64.StdEncoding.DecodeString(event.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "lambda_body_decode_failed",
			"request_id", event.RequestContext.RequestID,
			"err", err,
		)
		return []byte(event.Body)
	}
	return decoded
}
