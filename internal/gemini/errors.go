package gemini

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var (
	// ErrMissingAPIKey 는 Gemini API 키가 없을 때 반환된다.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable not set")
	// ErrNoCandidates 는 응답에 후보가 하나도 없을 때 반환된다.
	ErrNoCandidates = errors.New("api returned no candidates in the response")
	// ErrEmptyContent 는 첫 후보에 content/parts 가 없을 때 반환된다.
	ErrEmptyContent = errors.New("api returned a candidate without content parts")
	// ErrMissingText 는 첫 part 에 text 가 없을 때 반환된다.
	ErrMissingText = errors.New("api response is missing the text part")
	// ErrMissingInlineData 는 첫 part 에 inline data 가 없을 때 반환된다.
	ErrMissingInlineData = errors.New("api response is missing the inline audio data")
	// ErrRequestFailed 는 상태 코드 없이 업스트림 호출이 실패했을 때(전송 오류, 타임아웃) 붙는다.
	ErrRequestFailed = errors.New("api request failed")
)

// UpstreamError 는 업스트림이 성공이 아닌 HTTP 상태를 돌려줬을 때의 오류다.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api call failed with status: %d", e.StatusCode)
	}
	return fmt.Sprintf("api call failed with status: %d - %s", e.StatusCode, e.Body)
}

// IsShapeError 는 성공 응답이지만 기대한 필드가 빠진 경우인지 판별한다.
func IsShapeError(err error) bool {
	return errors.Is(err, ErrNoCandidates) ||
		errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrMissingText) ||
		errors.Is(err, ErrMissingInlineData)
}

// classifyError 는 SDK 오류를 UpstreamError 로 바꾼다. 상태 코드가 없는 오류는 감싸서 돌려준다.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.Code, Body: apiErrorBody(apiErr)}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &UpstreamError{StatusCode: apiErrPtr.Code, Body: apiErrorBody(*apiErrPtr)}
	}

	return fmt.Errorf("%w: %w", ErrRequestFailed, err)
}

func apiErrorBody(apiErr genai.APIError) string {
	parts := make([]string, 0, 2)
	if apiErr.Status != "" {
		parts = append(parts, apiErr.Status)
	}
	if apiErr.Message != "" {
		parts = append(parts, apiErr.Message)
	}
	return strings.Join(parts, ": ")
}
