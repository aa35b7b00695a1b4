package function

import "testing"

func TestNameForPath(t *testing.T) {
	cases := map[string]string{
		"/api/tip":                        NameTip,
		"/api/tts/":                       NameSpeech,
		"/.netlify/functions/get-pro-tip": NameTip,
		"/.netlify/functions/get-tts":     NameSpeech,
		"/prod/get-pro-tip":               NameTip,
	}
	for requestPath, want := range cases {
		got, ok := NameForPath(requestPath)
		if !ok || got != want {
			t.Fatalf("%s: expected %s, got %q (ok=%v)", requestPath, want, got, ok)
		}
	}

	for _, requestPath := range []string{"", "/", "/health", "/api/other"} {
		if name, ok := NameForPath(requestPath); ok {
			t.Fatalf("%s: expected no match, got %s", requestPath, name)
		}
	}
}

func TestRoutesResolveToOwnFunction(t *testing.T) {
	for name, paths := range Routes {
		for _, requestPath := range paths {
			got, ok := NameForPath(requestPath)
			if !ok || got != name {
				t.Fatalf("%s: expected %s, got %q", requestPath, name, got)
			}
		}
	}
}
