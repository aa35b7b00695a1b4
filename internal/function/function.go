// Package function 은 호스팅 방식(HTTP 서버, Lambda)과 무관한 요청 -> 응답 함수를 정의한다.
package function

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/wickes36/golf/internal/httperror"
	"github.com/wickes36/golf/internal/metrics"
)

const (
	// NameTip 은 팁 함수 이름이다.
	NameTip = "tip"
	// NameSpeech 는 음성 함수 이름이다.
	NameSpeech = "tts"

	methodNotAllowedBody = "Method Not Allowed"
	contentTypeJSON      = "application/json"
	contentTypeText      = "text/plain; charset=utf-8"
)

// Request 는 한 번의 호출 입력이다.
type Request struct {
	Method    string
	Path      string
	RequestID string
	Headers   map[string]string
	Body      []byte
}

// Response 는 한 번의 호출 결과다. StatusCode 는 200, 405, 500 중 하나다.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Handler 는 요청 하나를 응답 하나로 바꾼다. 호출 사이에 상태를 공유하지 않는다.
type Handler interface {
	Name() string
	Invoke(ctx context.Context, req Request) Response
}

// endpoint 는 두 함수가 공유하는 검증 -> 호출 -> 응답 골격이다.
type endpoint struct {
	name      string
	prefix    string
	failEvent string
	metrics   *metrics.Store
	logger    *slog.Logger
}

func (e *endpoint) serve(ctx context.Context, req Request, call func(ctx context.Context, body []byte) (any, error)) Response {
	start := time.Now()
	if req.Method != http.MethodPost {
		e.metrics.RecordInvocation(e.name, "method_not_allowed", time.Since(start))
		return Response{
			StatusCode: http.StatusMethodNotAllowed,
			Headers:    map[string]string{"Content-Type": contentTypeText, "Allow": http.MethodPost},
			Body:       []byte(methodNotAllowedBody),
		}
	}

	result, err := call(ctx, req.Body)
	if err == nil {
		body, marshalErr := json.Marshal(result)
		if marshalErr == nil {
			e.metrics.RecordInvocation(e.name, "ok", time.Since(start))
			return jsonResponse(http.StatusOK, body)
		}
		err = marshalErr
	}

	apiErr, payload := httperror.FunctionFailure(e.prefix, err)
	e.metrics.RecordInvocation(e.name, string(apiErr.Kind), time.Since(start))
	e.logger.ErrorContext(ctx, e.failEvent,
		"function", e.name,
		"kind", apiErr.Kind,
		"request_id", req.RequestID,
		"err", err,
	)

	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		body = []byte(`{"error":"` + e.prefix + `"}`)
	}
	return jsonResponse(http.StatusInternalServerError, body)
}

func jsonResponse(status int, body []byte) Response {
	return Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       body,
	}
}

func newEndpoint(name, prefix, failEvent string, metricsStore *metrics.Store, logger *slog.Logger) endpoint {
	if logger == nil {
		logger = slog.Default()
	}
	return endpoint{
		name:      name,
		prefix:    prefix,
		failEvent: failEvent,
		metrics:   metricsStore,
		logger:    logger,
	}
}
