package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smimdla0205/sedaily-game/internal/news"
)

func TestBuildKnowledgeBaseSourceOrdering(t *testing.T) {
	query := Query{
		Question:       "금리가 왜 오르나요?",
		GameType:       GameSignalDecoding,
		QuestionText:   "기준금리 인상의 효과는?",
		QuizArticleURL: "https://www.sedaily.com/NewsView/ABC123",
	}
	articles := []news.Article{
		{Title: "한은 기준금리 동결", Content: "한국은행이 기준금리를 동결했다", Provider: "서울경제"},
	}

	kb := BuildKnowledgeBase(query, articles)

	require.Len(t, kb.Sources, 3)
	assert.Equal(t, SourceNewsSearch, kb.Sources[0].Kind)
	assert.Equal(t, SourceQuizArticle, kb.Sources[1].Kind)
	assert.Equal(t, SourceQuizContext, kb.Sources[2].Kind)
	assert.Equal(t, "3개 외부 지식 소스 활용", kb.Summary)
}

func TestBuildKnowledgeBaseNewsContent(t *testing.T) {
	articles := []news.Article{
		{Title: "증시 급등", Content: strings.Repeat("가", 300), Provider: "한국경제"},
		{Title: "환율 하락", Content: "원달러 환율이 하락했다", Provider: "연합뉴스"},
	}

	kb := BuildKnowledgeBase(Query{Question: "q"}, articles)

	require.Len(t, kb.Sources, 1)
	src := kb.Sources[0]
	assert.Equal(t, 2, src.ArticleCount)
	assert.Contains(t, src.Content, "[뉴스 1] 한국경제: 증시 급등")
	assert.Contains(t, src.Content, "[뉴스 2] 연합뉴스: 환율 하락")
	// Snippets are cut to 200 runes before the ellipsis marker.
	assert.Contains(t, src.Content, strings.Repeat("가", 200)+"...")
	assert.NotContains(t, src.Content, strings.Repeat("가", 201))
}

func TestBuildKnowledgeBaseCapsNewsAtThree(t *testing.T) {
	articles := make([]news.Article, 5)
	for i := range articles {
		articles[i] = news.Article{Title: "t", Content: "c", Provider: "p"}
	}

	kb := BuildKnowledgeBase(Query{Question: "q"}, articles)

	require.Len(t, kb.Sources, 1)
	assert.Equal(t, 3, kb.Sources[0].ArticleCount)
	assert.NotContains(t, kb.Sources[0].Content, "[뉴스 4]")
}

func TestBuildKnowledgeBaseArticleStub(t *testing.T) {
	kb := BuildKnowledgeBase(Query{
		Question:       "q",
		QuizArticleURL: "https://example.com/article",
	}, nil)

	require.Len(t, kb.Sources, 1)
	src := kb.Sources[0]
	assert.Equal(t, SourceQuizArticle, src.Kind)
	assert.Contains(t, src.Content, "https://example.com/article")
	assert.Contains(t, src.Content, "구현 예정")
	assert.Equal(t, "https://example.com/article", src.URL)
}

func TestBuildKnowledgeBaseEmpty(t *testing.T) {
	kb := BuildKnowledgeBase(Query{Question: "q"}, nil)

	assert.Empty(t, kb.Sources)
	assert.Equal(t, "0개 외부 지식 소스 활용", kb.Summary)
	assert.Equal(t, "외부 지식 정보가 없습니다.", kb.RAGContext())
}

func TestRAGContextLabels(t *testing.T) {
	query := Query{
		Question:       "q",
		QuestionText:   "퀴즈 본문",
		QuizArticleURL: "https://example.com/a",
	}
	articles := []news.Article{{Title: "t", Content: "c", Provider: "p"}}

	ctx := BuildKnowledgeBase(query, articles).RAGContext()

	assert.Contains(t, ctx, "📰 최신 뉴스 (1건):")
	assert.Contains(t, ctx, "📄 퀴즈 관련 기사:")
	assert.Contains(t, ctx, "🎯 퀴즈 문제:\n퀴즈 본문")
}

func TestBuildKnowledgeBaseDeterministic(t *testing.T) {
	query := Query{Question: "금리?", QuestionText: "문제", QuizArticleURL: "https://x"}
	articles := []news.Article{{Title: "t", Content: "c", Provider: "p"}}

	first := BuildKnowledgeBase(query, articles)
	second := BuildKnowledgeBase(query, articles)

	assert.Equal(t, first, second)
}
