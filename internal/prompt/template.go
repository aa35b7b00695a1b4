package prompt

import (
	"fmt"
	"strings"
)

// segment 는 템플릿을 리터럴과 placeholder 로 나눈 조각이다.
type segment struct {
	literal     string
	placeholder string
}

// parseTemplate 는 {name} placeholder 를 찾아낸다. {{ 와 }} 는 중괄호 리터럴이다.
func parseTemplate(template string) ([]segment, error) {
	segments := make([]segment, 0, 8)
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(template); {
		ch := template[i]
		switch {
		case ch == '{' && strings.HasPrefix(template[i:], "{{"):
			literal.WriteByte('{')
			i += 2
		case ch == '}' && strings.HasPrefix(template[i:], "}}"):
			literal.WriteByte('}')
			i += 2
		case ch == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("invalid template: missing '}'")
			}
			flush()
			segments = append(segments, segment{placeholder: template[i+1 : i+1+end]})
			i += end + 2
		case ch == '}':
			return nil, fmt.Errorf("invalid template: unexpected '}'")
		default:
			literal.WriteByte(ch)
			i++
		}
	}
	flush()
	return segments, nil
}

// FormatTemplate: 템플릿의 {key} 를 values 로 치환합니다. 값은 그대로 삽입됩니다.
func FormatTemplate(template string, values map[string]string) (string, error) {
	segments, err := parseTemplate(template)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.Grow(len(template))
	for _, seg := range segments {
		if seg.placeholder == "" {
			builder.WriteString(seg.literal)
			continue
		}
		value, ok := values[seg.placeholder]
		if !ok {
			return "", fmt.Errorf("missing template value for %q", seg.placeholder)
		}
		builder.WriteString(value)
	}
	return builder.String(), nil
}

// Placeholders 는 템플릿이 요구하는 키 목록을 등장 순서대로 반환한다.
func Placeholders(template string) ([]string, error) {
	segments, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.placeholder != "" {
			keys = append(keys, seg.placeholder)
		}
	}
	return keys, nil
}

// ValidateSystemStatic: 시스템 프롬프트에 placeholder 가 없는지 검사합니다.
func ValidateSystemStatic(name string, system string) error {
	keys, err := Placeholders(system)
	if err != nil {
		return fmt.Errorf("%s: invalid system prompt template syntax: %w", name, err)
	}
	if len(keys) > 0 {
		return fmt.Errorf("%s: system prompt must not contain template variables %q", name, keys[0])
	}
	return nil
}
