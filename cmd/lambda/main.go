package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/di"
)

func main() {
	app, err := di.InitializeLambda(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize lambda: %v", err)
	}

	config.LogEnvStatus(app.Config, app.Logger)
	app.Logger.Info("lambda_start",
		"function", app.Config.Lambda.Function,
		"tip_model", app.Config.Gemini.TipModel,
		"speech_model", app.Config.Gemini.SpeechModel,
	)

	lambda.StartWithOptions(app.Handler.Handle, lambda.WithEnableSIGTERM(func() {
		if err := app.Telemetry.Shutdown(context.Background()); err != nil {
			app.Logger.Warn("telemetry_shutdown_failed", "err", err)
		}
	}))
}
