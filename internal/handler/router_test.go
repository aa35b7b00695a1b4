package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/domain/caddy"
	"github.com/wickes36/golf/internal/function"
	"github.com/wickes36/golf/internal/gemini/geminitest"
	"github.com/wickes36/golf/internal/logging"
	"github.com/wickes36/golf/internal/metrics"
	"github.com/wickes36/golf/internal/usecase/protip"
	"github.com/wickes36/golf/internal/usecase/speech"
)

func newTestRouter(t *testing.T, cfg *config.Config, fake *geminitest.FakeGenerator) *gin.Engine {
	t.Helper()

	registry := prometheus.NewRegistry()
	store, err := metrics.NewStore(registry)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	prompts, err := caddy.NewPrompts()
	if err != nil {
		t.Fatalf("prompts: %v", err)
	}
	logger := logging.Discard()
	tipService, err := protip.New(cfg, fake, prompts, logger)
	if err != nil {
		t.Fatalf("tip service: %v", err)
	}
	speechService, err := speech.New(cfg, fake, logger)
	if err != nil {
		t.Fatalf("speech service: %v", err)
	}

	router := NewRouter(cfg, logger, registry,
		function.NewTip(tipService, store, logger),
		function.NewSpeech(speechService, store, logger),
	)
	gin.SetMode(gin.TestMode)
	return router
}

func baseConfig() *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{
			APIKey:         "test-key",
			TipModel:       config.DefaultTipModel,
			SpeechModel:    config.DefaultSpeechModel,
			SpeechVoice:    config.DefaultSpeechVoice,
			TimeoutSeconds: 30,
		},
		HTTP: config.HTTPConfig{MaxBodyBytes: 1 << 16},
	}
}

func TestTipRoutesReturnTip(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.TextResponse("Aim right of center...")}
	router := newTestRouter(t, baseConfig(), fake)

	body := `{"holeNumber":7,"par":4,"distToPin":380,"hazardsDescription":"Water hazard left of the fairway.","wind":"10 mph crosswind"}`
	for _, path := range function.Routes[function.NameTip] {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", path, resp.Code, resp.Body.String())
		}
		var payload caddy.TipResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
		if payload.Tip != "Aim right of center..." {
			t.Fatalf("%s: unexpected tip: %q", path, payload.Tip)
		}
		if !strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json") {
			t.Fatalf("%s: unexpected content type: %s", path, resp.Header().Get("Content-Type"))
		}
	}
	if fake.Calls() != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", fake.Calls())
	}
}

func TestSpeechRouteReturnsAudio(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.AudioResponse([]byte("ABC"), "audio/pcm")}
	router := newTestRouter(t, baseConfig(), fake)

	req := httptest.NewRequest(http.MethodPost, "/.netlify/functions/get-tts", strings.NewReader(`{"text":"Aim right of center."}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if strings.TrimSpace(resp.Body.String()) != `{"audioData":"QUJD"}` {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestGetIsMethodNotAllowed(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.TextResponse("unused")}
	router := newTestRouter(t, baseConfig(), fake)

	for _, paths := range function.Routes {
		for _, path := range paths {
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
			if resp.Code != http.StatusMethodNotAllowed {
				t.Fatalf("%s: expected 405, got %d", path, resp.Code)
			}
			if resp.Body.String() != "Method Not Allowed" {
				t.Fatalf("%s: unexpected body %q", path, resp.Body.String())
			}
			if resp.Header().Get("Allow") != http.MethodPost {
				t.Fatalf("%s: expected Allow header", path)
			}
		}
	}
	if fake.Calls() != 0 {
		t.Fatalf("expected no upstream call, got %d", fake.Calls())
	}
}

func TestOversizedBodyIsRejected(t *testing.T) {
	cfg := baseConfig()
	cfg.HTTP.MaxBodyBytes = 16
	fake := &geminitest.FakeGenerator{Response: geminitest.AudioResponse([]byte("ABC"), "audio/pcm")}
	router := newTestRouter(t, cfg, fake)

	req := httptest.NewRequest(http.MethodPost, "/api/tts", bytes.NewReader(bytes.Repeat([]byte("a"), 64)))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
	if fake.Calls() != 0 {
		t.Fatalf("expected no upstream call, got %d", fake.Calls())
	}
}

func TestGzipCompressesFunctionResponses(t *testing.T) {
	cfg := baseConfig()
	cfg.HTTP.GzipEnabled = true
	fake := &geminitest.FakeGenerator{Response: geminitest.AudioResponse(bytes.Repeat([]byte("ABC"), 1024), "audio/pcm")}
	router := newTestRouter(t, cfg, fake)

	req := httptest.NewRequest(http.MethodPost, "/api/tts", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", resp.Header().Get("Content-Encoding"))
	}
}

func TestMissingCredentialReturns500(t *testing.T) {
	cfg := baseConfig()
	cfg.Gemini.APIKey = ""
	fake := &geminitest.FakeGenerator{}
	router := newTestRouter(t, cfg, fake)

	req := httptest.NewRequest(http.MethodPost, "/api/tts", strings.NewReader(`{"text":"hello"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Failed to fetch TTS audio: GEMINI_API_KEY") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
	if fake.Calls() != 0 {
		t.Fatalf("expected no upstream call, got %d", fake.Calls())
	}
}
