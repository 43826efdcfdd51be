package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"
)

// DefaultModelID is the Claude model used when no override is configured.
const DefaultModelID = "anthropic.claude-3-sonnet-20240229-v1:0"

type BedrockClient interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// ModelPrompt is the system/user pair sent to the model.
type ModelPrompt struct {
	System string
	User   string
}

// BuildPrompt builds the instruction block and user content for a query. The
// wording differs between the knowledge-backed and plain paths, matching the
// deployed prompts.
func BuildPrompt(query Query, kb KnowledgeBase) ModelPrompt {
	if len(kb.Sources) > 0 {
		system := fmt.Sprintf(`당신은 경제 전문 AI 어시스턴트입니다.

게임 컨텍스트: %s

다음 원칙을 따라 답변하세요:
1. 제공된 외부 지식을 적극 활용하되, 순수한 분석력으로 답변
2. 최신 뉴스와 퀴즈 컨텍스트를 종합적으로 고려
3. 명확하고 전문적인 경제 분석 제공
4. 250-350자 내외의 적절한 길이
5. 한국어로 자연스럽게 작성`, GameDescription(query.GameType))

		user := fmt.Sprintf(`질문: %s

외부 지식 베이스:
%s

위 정보를 바탕으로 질문에 대해 전문적이고 통찰력 있는 답변을 해주세요.`, query.Question, kb.RAGContext())

		return ModelPrompt{System: system, User: user}
	}

	system := fmt.Sprintf(`당신은 경제 전문 AI 어시스턴트입니다.

게임 컨텍스트: %s

다음 원칙을 따라 답변하세요:
1. 사용자의 질문에 직접적이고 유용한 답변 제공
2. 경제학적 관점에서 명확하고 이해하기 쉬운 설명
3. 구체적인 예시나 분석 포함
4. 200-300자 내외의 적절한 길이
5. 친근하고 전문적인 톤으로 한국어 작성`, GameDescription(query.GameType))

	user := "질문: " + query.Question
	if query.QuestionText != "" {
		user += "\n\n현재 퀴즈 문제: " + query.QuestionText
	}
	user += "\n\n위 질문에 대해 경제학적 관점에서 도움이 되는 답변을 해주세요."

	return ModelPrompt{System: system, User: user}
}

// Generator produces answers via Bedrock, degrading to canned per-game text
// whenever the model is unavailable or returns nothing usable.
type Generator struct {
	client  BedrockClient
	modelID string
	log     *zap.Logger
}

func NewGenerator(client BedrockClient, modelID string, log *zap.Logger) *Generator {
	if modelID == "" {
		modelID = DefaultModelID
	}
	return &Generator{client: client, modelID: modelID, log: log}
}

// Claude on Bedrock request/response shapes.
type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	System           string             `json:"system"`
	Messages         []anthropicMessage `json:"messages"`
	Temperature      float64            `json:"temperature"`
	TopP             float64            `json:"top_p"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Generate answers the query. It never returns an error: any model failure
// falls back to FallbackResponse.
func (g *Generator) Generate(ctx context.Context, query Query, kb KnowledgeBase) string {
	text, err := g.invoke(ctx, BuildPrompt(query, kb))
	if err != nil {
		g.log.Error("claude invoke failed, using fallback", zap.Error(err))
		return FallbackResponse(query.Question, query.GameType)
	}
	g.log.Info("claude response generated",
		zap.String("game_type", string(query.GameType)),
		zap.Int("knowledge_sources", len(kb.Sources)))
	return text
}

func (g *Generator) invoke(ctx context.Context, prompt ModelPrompt) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("bedrock client not configured")
	}

	payload := anthropicRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        1000,
		System:           prompt.System,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt.User},
		},
		Temperature: 0.7,
		TopP:        0.9,
	}
	body, _ := json.Marshal(payload)

	out, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock InvokeModel: %w", err)
	}

	var raw anthropicResponse
	if err := json.Unmarshal(out.Body, &raw); err != nil {
		return "", fmt.Errorf("bedrock response unmarshal: %w", err)
	}

	var text string
	for _, c := range raw.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

var fallbackResponses = map[GameType]string{
	GameBlackSwan:        "'%s'에 대한 블랙스완 관점 분석을 제공하겠습니다. 예측하기 어려운 극단적 경제 상황에서는 리스크 관리와 불확실성 대응이 핵심입니다.",
	GamePrisonersDilemma: "'%s'에 대한 게임이론적 분석을 제공하겠습니다. 경제적 딜레마에서는 개별 최적화와 집단 최적화 간의 균형이 중요합니다.",
	GameSignalDecoding:   "'%s'에 대한 경제 신호 분석을 제공하겠습니다. 다양한 경제 지표를 종합적으로 해석하는 것이 필요합니다.",
}

// FallbackResponse is the deterministic canned answer used when no model
// output is available. It always succeeds.
func FallbackResponse(question string, gameType GameType) string {
	tmpl, ok := fallbackResponses[gameType]
	if !ok {
		tmpl = "'%s'에 대한 경제적 관점에서 분석을 제공하겠습니다."
	}
	return fmt.Sprintf(tmpl, question) + "\n\n더 구체적인 질문이 있으시면 언제든 말씀해 주세요."
}
