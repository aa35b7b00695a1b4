package function

import (
	"path"
	"strings"
)

// Routes 는 함수별 HTTP 경로다. Netlify 경로는 기존 클라이언트 호환용이다.
var Routes = map[string][]string{
	NameTip:    {"/api/tip", "/.netlify/functions/get-pro-tip"},
	NameSpeech: {"/api/tts", "/.netlify/functions/get-tts"},
}

// aliases 는 경로 마지막 조각 -> 함수 이름이다.
var aliases = map[string]string{
	"get-pro-tip": NameTip,
	NameTip:       NameTip,
	"get-tts":     NameSpeech,
	NameSpeech:    NameSpeech,
}

// NameForPath 는 요청 경로의 마지막 조각으로 함수 이름을 찾는다.
// API Gateway 스테이지 접두사가 붙은 경로도 같은 함수로 본다.
func NameForPath(requestPath string) (string, bool) {
	trimmed := strings.TrimRight(requestPath, "/")
	if trimmed == "" {
		return "", false
	}
	name, ok := aliases[path.Base(trimmed)]
	return name, ok
}
