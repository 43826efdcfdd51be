package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/smimdla0205/sedaily-game/internal/chat"
	"github.com/smimdla0205/sedaily-game/internal/news"
)

// NewsSearcher is the knowledge dependency; any error means "no external
// knowledge available" and the request still succeeds.
type NewsSearcher interface {
	Search(ctx context.Context, query string) ([]news.Article, error)
}

// ResponseGenerator produces the answer text. Implementations own their
// fallback and never fail.
type ResponseGenerator interface {
	Generate(ctx context.Context, query chat.Query, kb chat.KnowledgeBase) string
}

// Options selects which pipeline stages a deployment runs.
type Options struct {
	EnableNewsSearch bool
	EnableRAG        bool
	EnableModelCall  bool
	RuleBased        bool
}

type ChatHandler struct {
	gen  ResponseGenerator
	news NewsSearcher
	opts Options
	log  *zap.Logger
}

func NewChatHandler(gen ResponseGenerator, searcher NewsSearcher, opts Options, log *zap.Logger) *ChatHandler {
	return &ChatHandler{gen: gen, news: searcher, opts: opts, log: log}
}

var corsHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

type successBody struct {
	Response         string `json:"response"`
	KnowledgeSources *int   `json:"knowledge_sources,omitempty"`
	Timestamp        string `json:"timestamp"`
	Success          bool   `json:"success"`
}

func (h *ChatHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	// CORS preflight short-circuits before any validation.
	if req.RequestContext.HTTP.Method == http.MethodOptions {
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusOK,
			Headers:    corsHeaders,
			Body:       "",
		}, nil
	}

	var query chat.Query
	if err := json.Unmarshal([]byte(req.Body), &query); err != nil {
		h.log.Error("request body parse failed", zap.Error(err))
		return errorResponse(http.StatusInternalServerError, "서버 오류가 발생했습니다. 잠시 후 다시 시도해 주세요."), nil
	}

	query.Question = strings.TrimSpace(query.Question)
	if query.Question == "" {
		return errorResponse(http.StatusBadRequest, "질문이 필요합니다."), nil
	}

	h.log.Info("chat question received",
		zap.String("question", truncate(query.Question, 50)),
		zap.String("game_type", string(query.GameType)))

	var articles []news.Article
	if h.opts.EnableNewsSearch && h.news != nil {
		keywords := chat.ExtractKeywords(query.Question, query.QuestionText, query.GameType)
		h.log.Info("news search keywords", zap.String("keywords", keywords))

		found, err := h.news.Search(ctx, keywords)
		if err != nil {
			h.log.Error("news search failed, continuing without external knowledge", zap.Error(err))
		} else {
			articles = found
		}
	}

	var kb chat.KnowledgeBase
	if h.opts.EnableRAG {
		kb = chat.BuildKnowledgeBase(query, articles)
		h.log.Info("knowledge base assembled", zap.String("summary", kb.Summary))
	} else {
		// Without RAG assembly the quiz fields stay out of the knowledge
		// base; news results still flow through as the single source.
		kb = chat.BuildKnowledgeBase(chat.Query{Question: query.Question, GameType: query.GameType}, articles)
	}

	var text string
	switch {
	case h.opts.RuleBased:
		text = chat.RuleBasedResponse(query.Question, query.GameType)
	case h.opts.EnableModelCall && h.gen != nil:
		text = h.gen.Generate(ctx, query, kb)
	default:
		text = chat.FallbackResponse(query.Question, query.GameType)
	}

	body := successBody{
		Response:  text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Success:   true,
	}
	if h.opts.EnableRAG {
		n := len(kb.Sources)
		body.KnowledgeSources = &n
	}

	return jsonResponse(http.StatusOK, body), nil
}

func jsonResponse(status int, v any) events.APIGatewayV2HTTPResponse {
	b, _ := json.Marshal(v)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       string(b),
	}
}

func errorResponse(status int, msg string) events.APIGatewayV2HTTPResponse {
	return jsonResponse(status, map[string]any{
		"error":   msg,
		"success": false,
	})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
