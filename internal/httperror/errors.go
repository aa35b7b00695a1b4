package httperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/wickes36/golf/internal/domain/caddy"
	"github.com/wickes36/golf/internal/gemini"
)

// Kind 는 오류 분류다.
type Kind string

const (
	// KindConfiguration 는 설정 오류(자격 증명 누락)다.
	KindConfiguration Kind = "configuration"
	// KindInput 는 요청 본문 디코딩/검증 오류다.
	KindInput Kind = "input"
	// KindUpstream 는 업스트림 상태 코드/전송 오류다.
	KindUpstream Kind = "upstream"
	// KindShape 는 성공 응답에 기대 필드가 없는 오류다.
	KindShape Kind = "shape"
	// KindInternal 는 그 밖의 내부 오류다.
	KindInternal Kind = "internal"
	// KindUnauthorized 는 HTTP API 키 인증 실패다.
	KindUnauthorized Kind = "unauthorized"
	// KindRateLimit 는 HTTP 요청 제한 초과다.
	KindRateLimit Kind = "rate_limit"
	// KindPayloadTooLarge 는 HTTP 본문 크기 초과다.
	KindPayloadTooLarge Kind = "payload_too_large"
)

const (
	// PrefixTip 는 팁 실패 메시지 접두어다.
	PrefixTip = "Failed to fetch caddy tip"
	// PrefixSpeech 는 음성 실패 메시지 접두어다.
	PrefixSpeech = "Failed to fetch TTS audio"
)

// ErrorResponse 는 오류 응답 본문이다. 함수 응답은 error 필드만 채운다.
type ErrorResponse struct {
	Error     string         `json:"error"`
	Kind      string         `json:"kind,omitempty"`
	RequestID *string        `json:"request_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// Error 는 분류된 오류다. Message 는 호출자에게 보여줄 문장이다.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Details map[string]any
	Err     error
}

// Error 는 오류 메시지를 반환한다.
func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var shapeMessages = []struct {
	target  error
	message string
}{
	{gemini.ErrNoCandidates, "API returned no candidates in the response."},
	{gemini.ErrEmptyContent, "API returned a candidate without content parts."},
	{gemini.ErrMissingText, "API response is missing the text part."},
	{gemini.ErrMissingInlineData, "API response is missing the inline audio data."},
}

// FromError 는 오류를 분류한다. 함수 오류는 모두 500 으로 매핑된다.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, gemini.ErrMissingAPIKey) {
		return newFunctionError(KindConfiguration, "GEMINI_API_KEY environment variable not set.", err)
	}

	var inputErr *caddy.InputError
	if errors.As(err, &inputErr) {
		return newFunctionError(KindInput, inputErr.Error(), err)
	}

	var upstream *gemini.UpstreamError
	if errors.As(err, &upstream) {
		message := fmt.Sprintf("API call failed with status: %d", upstream.StatusCode)
		if upstream.Body != "" {
			message += " - " + upstream.Body
		}
		return newFunctionError(KindUpstream, message, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return newFunctionError(KindUpstream, "API call timed out.", err)
	}

	if errors.Is(err, gemini.ErrRequestFailed) {
		return newFunctionError(KindUpstream, err.Error(), err)
	}

	for _, shape := range shapeMessages {
		if errors.Is(err, shape.target) {
			return newFunctionError(KindShape, shape.message, err)
		}
	}

	return newFunctionError(KindInternal, err.Error(), err)
}

// FunctionFailure 는 함수 실패를 500 과 {"error": "<prefix>: <message>"} 로 변환한다.
func FunctionFailure(prefix string, err error) (*Error, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = newFunctionError(KindInternal, "unknown error", nil)
	}
	return apiErr, ErrorResponse{Error: prefix + ": " + apiErr.Message}
}

// Response 는 미들웨어 오류를 HTTP 응답으로 변환한다.
func Response(err error, requestID string) (int, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = newFunctionError(KindInternal, "unknown error", nil)
	}

	var requestIDPtr *string
	if requestID != "" {
		requestIDPtr = &requestID
	}

	return apiErr.Status, ErrorResponse{
		Error:     apiErr.Message,
		Kind:      string(apiErr.Kind),
		RequestID: requestIDPtr,
		Details:   apiErr.Details,
	}
}

func newFunctionError(kind Kind, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Status:  http.StatusInternalServerError,
		Message: message,
		Err:     err,
	}
}

// NewUnauthorized 는 인증 오류를 생성한다.
func NewUnauthorized(details map[string]any) *Error {
	return &Error{
		Kind:    KindUnauthorized,
		Status:  http.StatusUnauthorized,
		Message: "Invalid API key",
		Details: details,
	}
}

// NewRateLimitExceeded 는 요청 제한 오류를 생성한다.
func NewRateLimitExceeded(details map[string]any) *Error {
	return &Error{
		Kind:    KindRateLimit,
		Status:  http.StatusTooManyRequests,
		Message: "Rate limit exceeded",
		Details: details,
	}
}

// NewPayloadTooLarge 는 본문 크기 초과 오류를 생성한다.
func NewPayloadTooLarge(limit int64) *Error {
	return &Error{
		Kind:    KindPayloadTooLarge,
		Status:  http.StatusRequestEntityTooLarge,
		Message: fmt.Sprintf("Request body exceeds %d bytes", limit),
		Details: map[string]any{"limit_bytes": limit},
	}
}
