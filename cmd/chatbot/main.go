package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"

	"github.com/smimdla0205/sedaily-game/internal/chat"
	"github.com/smimdla0205/sedaily-game/internal/config"
	"github.com/smimdla0205/sedaily-game/internal/handlers"
	"github.com/smimdla0205/sedaily-game/internal/news"
)

// Full RAG deployment: BigKinds news search, knowledge assembly, Claude.
func main() {
	ctx := context.Background()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load(ctx, awsCfg)

	searcher := news.NewClient(cfg.BigKindsAPIKey, logger,
		news.WithEndpoint(cfg.BigKindsEndpoint),
		news.WithPageSize(cfg.NewsPageSize),
		news.WithTimeout(cfg.NewsTimeout),
	)
	gen := chat.NewGenerator(bedrockruntime.NewFromConfig(awsCfg), cfg.BedrockModelID, logger)

	h := handlers.NewChatHandler(gen, searcher, handlers.Options{
		EnableNewsSearch: true,
		EnableRAG:        true,
		EnableModelCall:  true,
	}, logger)

	lambda.Start(h.Handle)
}
