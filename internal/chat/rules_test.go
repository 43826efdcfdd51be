package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleBasedResponseConfusionBranches(t *testing.T) {
	cases := []struct {
		gameType GameType
		want     string
	}{
		{GameBlackSwan, "예측 불가능성"},
		{GamePrisonersDilemma, "개인 vs 집단 이익"},
		{GameSignalDecoding, "다중 지표 분석"},
		{"", "기본 원리 파악"},
	}
	for _, tc := range cases {
		got := RuleBasedResponse("정답이 이해가 안 가요", tc.gameType)
		assert.Contains(t, got, tc.want, "game %q", tc.gameType)
	}
}

func TestRuleBasedResponseConfusionMarkers(t *testing.T) {
	for _, q := range []string{"정답이 뭐죠", "이해가 안돼요", "너무 헷갈려요", "잘 모르겠어요"} {
		got := RuleBasedResponse(q, GameBlackSwan)
		assert.Contains(t, got, "블랙스완 게임에서", "question %q", q)
	}
}

func TestRuleBasedResponseDefaults(t *testing.T) {
	got := RuleBasedResponse("금리가 왜 오르나요", GameSignalDecoding)
	assert.Contains(t, got, "'금리가 왜 오르나요'")
	assert.Contains(t, got, "경제 신호 분석")

	generic := RuleBasedResponse("금리가 왜 오르나요", "UnknownGame")
	assert.Contains(t, generic, "경제적 관점에서 분석해보면")
}
