package chat

import (
	"fmt"
	"strings"

	"github.com/smimdla0205/sedaily-game/internal/news"
)

// SourceKind labels where a knowledge source came from.
type SourceKind string

const (
	SourceNewsSearch  SourceKind = "news_search"
	SourceQuizArticle SourceKind = "quiz_article"
	SourceQuizContext SourceKind = "quiz_context"
)

type KnowledgeSource struct {
	Kind         SourceKind `json:"type"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	ArticleCount int        `json:"articles_count,omitempty"`
	URL          string     `json:"url,omitempty"`
	GameType     GameType   `json:"game_type,omitempty"`
}

type KnowledgeBase struct {
	Sources []KnowledgeSource `json:"sources"`
	Summary string            `json:"summary"`
}

const (
	maxNewsSources = 3
	snippetRunes   = 200
)

// BuildKnowledgeBase assembles up to three knowledge sources, always in the
// order news search, quiz article, quiz context. Each is added only when its
// input is present, so an empty base is possible.
func BuildKnowledgeBase(query Query, articles []news.Article) KnowledgeBase {
	kb := KnowledgeBase{}

	if len(articles) > 0 {
		if len(articles) > maxNewsSources {
			articles = articles[:maxNewsSources]
		}
		var b strings.Builder
		for i, a := range articles {
			fmt.Fprintf(&b, "[뉴스 %d] %s: %s\n%s...\n\n", i+1, a.Provider, a.Title, truncateRunes(a.Content, snippetRunes))
		}
		kb.Sources = append(kb.Sources, KnowledgeSource{
			Kind:         SourceNewsSearch,
			Title:        "BigKinds 뉴스 검색 결과",
			Content:      strings.TrimSpace(b.String()),
			ArticleCount: len(articles),
		})
	}

	if query.QuizArticleURL != "" {
		// Article body extraction is not implemented upstream; only the URL
		// reaches the prompt.
		kb.Sources = append(kb.Sources, KnowledgeSource{
			Kind:    SourceQuizArticle,
			Title:   "퀴즈 관련 기사",
			Content: fmt.Sprintf("퀴즈 관련 기사: %s\n(기사 내용 추출 기능 구현 예정)", query.QuizArticleURL),
			URL:     query.QuizArticleURL,
		})
	}

	if query.QuestionText != "" {
		kb.Sources = append(kb.Sources, KnowledgeSource{
			Kind:     SourceQuizContext,
			Title:    "퀴즈 문제 컨텍스트",
			Content:  query.QuestionText,
			GameType: query.GameType,
		})
	}

	kb.Summary = fmt.Sprintf("%d개 외부 지식 소스 활용", len(kb.Sources))
	return kb
}

// RAGContext renders the sources as a labeled prompt block.
func (kb KnowledgeBase) RAGContext() string {
	if len(kb.Sources) == 0 {
		return "외부 지식 정보가 없습니다."
	}

	parts := make([]string, 0, len(kb.Sources))
	for _, src := range kb.Sources {
		switch src.Kind {
		case SourceNewsSearch:
			parts = append(parts, fmt.Sprintf("📰 최신 뉴스 (%d건):\n%s", src.ArticleCount, src.Content))
		case SourceQuizArticle:
			parts = append(parts, fmt.Sprintf("📄 퀴즈 관련 기사:\n%s", src.Content))
		case SourceQuizContext:
			parts = append(parts, fmt.Sprintf("🎯 퀴즈 문제:\n%s", src.Content))
		default:
			parts = append(parts, fmt.Sprintf("📋 %s:\n%s", src.Title, src.Content))
		}
	}
	return strings.Join(parts, "\n\n")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
