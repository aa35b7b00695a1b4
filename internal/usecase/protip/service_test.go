package protip

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/domain/caddy"
	"github.com/wickes36/golf/internal/gemini"
	"github.com/wickes36/golf/internal/gemini/geminitest"
	"github.com/wickes36/golf/internal/logging"
)

func testConfig(apiKey string) *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{
			APIKey:         apiKey,
			TipModel:       config.DefaultTipModel,
			SpeechModel:    config.DefaultSpeechModel,
			SpeechVoice:    config.DefaultSpeechVoice,
			TimeoutSeconds: 30,
		},
	}
}

func newService(t *testing.T, apiKey string, fake *geminitest.FakeGenerator) *Service {
	t.Helper()
	prompts, err := caddy.NewPrompts()
	if err != nil {
		t.Fatalf("load prompts: %v", err)
	}
	svc, err := New(testConfig(apiKey), fake, prompts, logging.Discard())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

var sampleRequest = caddy.TipRequest{
	HoleNumber:         7,
	Par:                4,
	DistToPin:          380,
	HazardsDescription: "Water hazard left of the fairway.",
	Wind:               "10 mph crosswind",
}

func TestTipSuccess(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.TextResponse("Aim right of center...")}
	svc := newService(t, "test-key", fake)

	tip, err := svc.Tip(context.Background(), sampleRequest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tip != "Aim right of center..." {
		t.Fatalf("unexpected tip: %q", tip)
	}

	call, ok := fake.LastCall()
	if !ok || fake.Calls() != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", fake.Calls())
	}
	if call.Model != config.DefaultTipModel {
		t.Fatalf("unexpected model: %s", call.Model)
	}
	if len(call.Contents) != 1 || len(call.Contents[0].Parts) != 1 {
		t.Fatalf("expected single content part: %+v", call.Contents)
	}
	want := "Ace, I'm on Hole 7, a 380 yard Par 4. Water hazard left of the fairway. The wind is 10 mph crosswind. What's the play?"
	if call.Contents[0].Parts[0].Text != want {
		t.Fatalf("unexpected user text: %s", call.Contents[0].Parts[0].Text)
	}
	if call.Config == nil || call.Config.SystemInstruction == nil || len(call.Config.SystemInstruction.Parts) == 0 {
		t.Fatalf("expected system instruction")
	}
	if call.Config.SystemInstruction.Parts[0].Text == "" {
		t.Fatalf("expected system instruction text")
	}
}

func TestTipMissingAPIKeySkipsUpstream(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.TextResponse("unused")}
	svc := newService(t, "", fake)

	_, err := svc.Tip(context.Background(), sampleRequest)
	if !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Fatalf("expected missing api key error, got %v", err)
	}
	if fake.Calls() != 0 {
		t.Fatalf("expected no upstream call, got %d", fake.Calls())
	}
}

func TestTipUpstreamError(t *testing.T) {
	fake := &geminitest.FakeGenerator{Err: &gemini.UpstreamError{StatusCode: 429, Body: "quota"}}
	svc := newService(t, "test-key", fake)

	_, err := svc.Tip(context.Background(), sampleRequest)
	var upstream *gemini.UpstreamError
	if !errors.As(err, &upstream) || upstream.StatusCode != 429 {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestTipShapeErrors(t *testing.T) {
	cases := []struct {
		name     string
		response *genai.GenerateContentResponse
		want     error
	}{
		{name: "nil response", response: nil, want: gemini.ErrNoCandidates},
		{name: "no candidates", response: &genai.GenerateContentResponse{}, want: gemini.ErrNoCandidates},
		{name: "no parts", response: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}}, want: gemini.ErrEmptyContent},
		{name: "no text", response: geminitest.AudioResponse([]byte("ABC"), "audio/pcm"), want: gemini.ErrMissingText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &geminitest.FakeGenerator{Response: tc.response}
			svc := newService(t, "test-key", fake)

			_, err := svc.Tip(context.Background(), sampleRequest)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTipHonorsCanceledContext(t *testing.T) {
	fake := &geminitest.FakeGenerator{Response: geminitest.TextResponse("late")}
	svc := newService(t, "test-key", fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Tip(ctx, sampleRequest); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestNewRejectsNilDependencies(t *testing.T) {
	prompts, err := caddy.NewPrompts()
	if err != nil {
		t.Fatalf("load prompts: %v", err)
	}
	if _, err := New(nil, &geminitest.FakeGenerator{}, prompts, nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := New(testConfig("k"), nil, prompts, nil); err == nil {
		t.Fatalf("expected error for nil generator")
	}
	if _, err := New(testConfig("k"), &geminitest.FakeGenerator{}, nil, nil); err == nil {
		t.Fatalf("expected error for nil prompts")
	}
}
