package gemini

import (
	"context"

	"google.golang.org/genai"
)

// ContentGenerator 는 generateContent 호출 하나만 노출하는 업스트림 추상화다.
// 시그니처는 genai.Models.GenerateContent 와 같아서 SDK 를 그대로 꽂을 수 있고,
// 테스트에서는 가짜 구현을 주입한다.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Client가 ContentGenerator 인터페이스를 구현하는지 컴파일 타임 확인
var _ ContentGenerator = (*Client)(nil)
