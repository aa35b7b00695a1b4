// Package geminitest 는 테스트용 ContentGenerator 구현을 제공한다.
package geminitest

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// Call 은 FakeGenerator 가 받은 요청 한 건이다.
type Call struct {
	Model    string
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
}

// FakeGenerator 는 고정 응답을 돌려주고 호출을 기록한다.
type FakeGenerator struct {
	mu       sync.Mutex
	Response *genai.GenerateContentResponse
	Err      error
	calls    []Call
}

// GenerateContent 는 호출을 기록하고 Response/Err 를 반환한다.
func (f *FakeGenerator) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Model: model, Contents: contents, Config: config})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.Response, f.Err
}

// Calls 는 지금까지 기록된 호출 수를 반환한다.
func (f *FakeGenerator) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// LastCall 은 마지막 호출을 반환한다.
func (f *FakeGenerator) LastCall() (Call, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return Call{}, false
	}
	return f.calls[len(f.calls)-1], true
}

// TextResponse 는 첫 part 가 text 인 응답을 만든다.
func TextResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

// AudioResponse 는 첫 part 가 inline data 인 응답을 만든다.
func AudioResponse(data []byte, mimeType string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{InlineData: &genai.Blob{Data: data, MIMEType: mimeType}}}}},
		},
	}
}
