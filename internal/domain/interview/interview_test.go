package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecalculateTotalScore(t *testing.T) {
	iv := Interview{
		Questions: []Question{
			{Question: "q1", AIFeedback: &AIFeedback{OverallScore: 80}},
			{Question: "q2", AIFeedback: &AIFeedback{OverallScore: 60}},
			{Question: "q3"},
		},
	}
	iv.RecalculateTotalScore()
	assert.InDelta(t, (80.0+60.0+0.0)/3.0, iv.TotalScore, 1e-9)
}

func TestRecalculateTotalScoreMissingFeedbackCountsAsZero(t *testing.T) {
	iv := Interview{
		Questions: []Question{
			{Question: "q1", AIFeedback: &AIFeedback{OverallScore: 90}},
			{Question: "q2"},
		},
	}
	iv.RecalculateTotalScore()
	assert.InDelta(t, 45.0, iv.TotalScore, 1e-9)
}

func TestRecalculateTotalScoreNoQuestionsLeavesValue(t *testing.T) {
	iv := Interview{TotalScore: 77}
	iv.RecalculateTotalScore()
	assert.InDelta(t, 77.0, iv.TotalScore, 1e-9)
}
