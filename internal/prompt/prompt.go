package prompt

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template 은 YAML 파일 하나에 담긴 시스템/유저 프롬프트 쌍이다.
type Template struct {
	Name   string `yaml:"-"`
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// Load 는 fsys 의 YAML 프롬프트 파일을 읽고 검증한다.
// system 은 정적이어야 하고 user 템플릿은 문법이 올바라야 한다.
func Load(fsys fs.FS, filePath string) (*Template, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("read prompt file: %w", err)
	}

	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parse prompt yaml: %w", err)
	}
	tmpl.Name = strings.TrimSuffix(filePath[strings.LastIndex(filePath, "/")+1:], ".yml")
	tmpl.System = strings.TrimSpace(tmpl.System)
	tmpl.User = strings.TrimSpace(tmpl.User)

	if tmpl.User == "" {
		return nil, fmt.Errorf("%s: user prompt is empty", filePath)
	}
	if err := ValidateSystemStatic(filePath, tmpl.System); err != nil {
		return nil, err
	}
	if _, err := Placeholders(tmpl.User); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return &tmpl, nil
}

// RenderUser 는 유저 프롬프트 템플릿을 values 로 채운다.
func (t *Template) RenderUser(values map[string]string) (string, error) {
	if t == nil {
		return "", fmt.Errorf("prompt not initialized")
	}
	rendered, err := FormatTemplate(t.User, values)
	if err != nil {
		return "", fmt.Errorf("format %s.user: %w", t.Name, err)
	}
	return rendered, nil
}
