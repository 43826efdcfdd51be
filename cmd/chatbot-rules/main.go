package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/smimdla0205/sedaily-game/internal/handlers"
)

// Rule-based deployment: template answers only, no external calls.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	h := handlers.NewChatHandler(nil, nil, handlers.Options{
		RuleBased: true,
	}, logger)

	lambda.Start(h.Handle)
}
