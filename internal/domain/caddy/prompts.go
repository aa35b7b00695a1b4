package caddy

import (
	"embed"
	"fmt"
	"strconv"

	"github.com/wickes36/golf/internal/prompt"
)

//go:embed prompts/*.yml
var promptsFS embed.FS

// Prompts 는 캐디 팁 프롬프트다.
type Prompts struct {
	tip *prompt.Template
}

// NewPrompts 는 내장 프롬프트 파일을 로드한다.
func NewPrompts() (*Prompts, error) {
	tip, err := prompt.Load(promptsFS, "prompts/tip.yml")
	if err != nil {
		return nil, fmt.Errorf("load caddy prompts: %w", err)
	}
	return &Prompts{tip: tip}, nil
}

// TipSystem 은 'Ace' 캐디 페르소나 시스템 프롬프트를 반환한다.
func (p *Prompts) TipSystem() string {
	return p.tip.System
}

// TipUser 는 입력 필드를 그대로 끼워 넣은 유저 메시지를 만든다.
func (p *Prompts) TipUser(req TipRequest) (string, error) {
	return p.tip.RenderUser(map[string]string{
		"holeNumber":         strconv.Itoa(req.HoleNumber),
		"par":                strconv.Itoa(req.Par),
		"distToPin":          strconv.FormatFloat(req.DistToPin, 'f', -1, 64),
		"hazardsDescription": req.HazardsDescription,
		"wind":               req.Wind,
	})
}
