package chat

import "strings"

// economicTerms is scanned in order; earlier entries win when the cap is hit.
var economicTerms = []string{
	"금리", "환율", "주식", "부동산", "인플레이션", "경제성장",
	"수출", "수입", "무역", "투자", "소비", "고용", "실업",
	"코스피", "코스닥", "달러", "원화", "GDP", "CPI",
}

var gameKeywords = map[GameType][]string{
	GameBlackSwan:        {"위기", "리스크", "예측", "충격"},
	GamePrisonersDilemma: {"경쟁", "협력", "전략", "딜레마"},
	GameSignalDecoding:   {"지표", "신호", "분석", "데이터"},
}

const (
	maxTermMatches = 3
	maxKeywords    = 5
)

// ExtractKeywords derives a news-search query from the user question and the
// optional quiz question text. Exact substring matching against a fixed term
// table, capped at 3; when nothing matches, the first 3 whitespace tokens
// longer than one character stand in. Known game types contribute two extra
// keywords, and the generic 경제/금융 pair pads the tail. At most 5 tokens.
func ExtractKeywords(question, quizText string, gameType GameType) string {
	combined := question + " " + quizText

	keywords := make([]string, 0, maxKeywords)
	for _, term := range economicTerms {
		if strings.Contains(combined, term) {
			keywords = append(keywords, term)
			if len(keywords) == maxTermMatches {
				break
			}
		}
	}

	if len(keywords) == 0 {
		cleaned := strings.NewReplacer("?", "", "!", "").Replace(combined)
		for _, word := range strings.Fields(cleaned) {
			if len([]rune(word)) > 1 {
				keywords = append(keywords, word)
				if len(keywords) == maxTermMatches {
					break
				}
			}
		}
	}

	if extra, ok := gameKeywords[gameType]; ok {
		keywords = append(keywords, extra[:2]...)
	}
	keywords = append(keywords, "경제", "금융")

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return strings.Join(keywords, " ")
}
