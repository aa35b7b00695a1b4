package lambda

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
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

func newTestHandler(t *testing.T, pinned string, fake *geminitest.FakeGenerator) *Handler {
	t.Helper()

	cfg := &config.Config{
		Gemini: config.GeminiConfig{
			APIKey:         "test-key",
			TipModel:       config.DefaultTipModel,
			SpeechModel:    config.DefaultSpeechModel,
			SpeechVoice:    config.DefaultSpeechVoice,
			TimeoutSeconds: 30,
		},
		Lambda: config.LambdaConfig{Function: pinned},
	}
	store, err := metrics.NewStore(prometheus.NewRegistry())
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

	return NewHandler(cfg,
		function.NewTip(tipService, store, logger),
		function.NewSpeech(speechService, store, logger),
		logger,
	)
}

func TestHandleRoutesByPath(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.TextResponse("Aim right of center...")}
	handler := newTestHandler(t, "", fake)

	for _, eventPath := range []string{"/.netlify/functions/get-pro-tip", "/prod/tip", "/api/tip/"} {
		resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodPost,
			Path:       eventPath,
			Body:       `{"holeNumber":7,"par":4,"distToPin":380,"hazardsDescription":"Water hazard left of the fairway.","wind":"10 mph crosswind"}`,
		})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", eventPath, err)
		}
		if resp.StatusCode != http.StatusOK || resp.Body != `{"tip":"Aim right of center..."}` {
			t.Fatalf("%s: unexpected response: %d %s", eventPath, resp.StatusCode, resp.Body)
		}
	}
}

func TestHandleDecodesBase64Body(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.AudioResponse([]byte("ABC"), "audio/pcm")}
	handler := newTestHandler(t, "", fake)

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/.netlify/functions/get-tts",
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"text":"Aim right of center."}`)),
		IsBase64Encoded: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK || resp.Body != `{"audioData":"QUJD"}` {
		t.Fatalf("unexpected response: %d %s", resp.StatusCode, resp.Body)
	}
}

func TestHandleMethodNotAllowed(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.TextResponse("unused")}
	handler := newTestHandler(t, "", fake)

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/.netlify/functions/get-pro-tip",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusMethodNotAllowed || resp.Body != "Method Not Allowed" {
		t.Fatalf("unexpected response: %d %s", resp.StatusCode, resp.Body)
	}
	if fake.Calls() != 0 {
		t.Fatalf("expected no upstream call, got %d", fake.Calls())
	}
}

func TestHandleUnknownPath(t *testing.T) {
	handler := newTestHandler(t, "", &geminitest.FakeGenerator{})

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/somewhere/else",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHandlePinnedFunction(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.AudioResponse([]byte("ABC"), "audio/pcm")}
	handler := newTestHandler(t, function.NameSpeech, fake)

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/",
		Body:       `{"text":"hello"}`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK || !strings.Contains(resp.Body, "QUJD") {
		t.Fatalf("unexpected response: %d %s", resp.StatusCode, resp.Body)
	}
}

func TestHandleLowercaseMethodIsNotAllowed(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.TextResponse("Aim left.")}
	handler := newTestHandler(t, "", fake)

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "post",
		Path:       "/.netlify/functions/get-pro-tip",
		Body:       `{"holeNumber":7,"par":4,"distToPin":380}`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
	if fake.Calls() != 0 {
		t.Fatalf("expected no upstream call, got %d", fake.Calls())
	}
}
