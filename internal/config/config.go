// Package config loads per-function settings from the environment, with an
// optional SSM Parameter Store lookup for the BigKinds API key.
package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/smimdla0205/sedaily-game/internal/news"
)

type Config struct {
	BigKindsAPIKey   string
	BigKindsEndpoint string
	NewsPageSize     int
	NewsTimeout      time.Duration

	BedrockModelID string
}

type ssmClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Load reads the environment once. When BIGKINDS_API_KEY is unset and
// BIGKINDS_API_KEY_PARAM names an SSM parameter, the key is fetched from
// Parameter Store instead; a failed lookup leaves the key empty, which
// downgrades news search rather than failing the function.
func Load(ctx context.Context, cfg awssdk.Config) Config {
	return load(ctx, os.Getenv, ssm.NewFromConfig(cfg))
}

func load(ctx context.Context, getenv func(string) string, sc ssmClient) Config {
	c := Config{
		BigKindsAPIKey:   strings.TrimSpace(getenv("BIGKINDS_API_KEY")),
		BigKindsEndpoint: strings.TrimSpace(getenv("BIGKINDS_ENDPOINT")),
		NewsPageSize:     intEnv(getenv, "BIGKINDS_PAGE_SIZE", 3),
		NewsTimeout:      time.Duration(intEnv(getenv, "BIGKINDS_TIMEOUT_SECONDS", 15)) * time.Second,
		BedrockModelID:   strings.TrimSpace(getenv("BEDROCK_MODEL_ID")),
	}
	if c.BigKindsEndpoint == "" {
		c.BigKindsEndpoint = news.DefaultEndpoint
	}

	if c.BigKindsAPIKey == "" {
		if param := strings.TrimSpace(getenv("BIGKINDS_API_KEY_PARAM")); param != "" {
			c.BigKindsAPIKey = fetchParameter(ctx, sc, param)
		}
	}
	return c
}

func fetchParameter(ctx context.Context, sc ssmClient, name string) string {
	out, err := sc.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           awssdk.String(name),
		WithDecryption: awssdk.Bool(true),
	})
	if err != nil || out.Parameter == nil || out.Parameter.Value == nil {
		return ""
	}
	return strings.TrimSpace(*out.Parameter.Value)
}

func intEnv(getenv func(string) string, key string, def int) int {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
