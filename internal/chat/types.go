package chat

// GameType identifies which quiz game a question came from. Unrecognized
// values fall back to the generic economic-news context.
type GameType string

const (
	GameBlackSwan        GameType = "BlackSwan"
	GamePrisonersDilemma GameType = "PrisonersDilemma"
	GameSignalDecoding   GameType = "SignalDecoding"
)

// Query is the parsed chat request. Question is the only required field.
type Query struct {
	Question       string   `json:"question"`
	GameType       GameType `json:"gameType,omitempty"`
	QuestionText   string   `json:"questionText,omitempty"`
	QuizArticleURL string   `json:"quizArticleUrl,omitempty"`
	QuestionIndex  int      `json:"questionIndex,omitempty"`
}

var gameDescriptions = map[GameType]string{
	GameBlackSwan:        "예측하기 어려운 극단적 경제 이벤트 분석",
	GamePrisonersDilemma: "경제적 딜레마와 게임이론 상황 분석",
	GameSignalDecoding:   "경제 신호와 지표 해석 분석",
}

// GameDescription returns the per-game context line used in system prompts.
func GameDescription(gt GameType) string {
	if d, ok := gameDescriptions[gt]; ok {
		return d
	}
	return "경제 뉴스 분석"
}
