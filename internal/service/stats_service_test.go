package service

import (
	"testing"

	"episode-service/internal/models"
)

func TestFillWinningsZeroFillsBothTypes(t *testing.T) {
	filled := fillWinnings(nil)
	if len(filled) != 2 {
		t.Fatalf("Expected 2 type buckets, got %d", len(filled))
	}
	for _, eventType := range []string{models.TypeQuestion, models.TypeQuestionNumber} {
		winnings, ok := filled[eventType]
		if !ok {
			t.Fatalf("Expected bucket for %s", eventType)
		}
		if winnings.TotalAmountWon != 0 || winnings.TotalCorrectQuestions != 0 {
			t.Errorf("Expected zero-filled bucket for %s, got %+v", eventType, winnings)
		}
	}
}

func TestFillWinningsKeepsRecordedTypes(t *testing.T) {
	filled := fillWinnings(map[string]models.TypeWinnings{
		models.TypeQuestion: {TotalAmountWon: 500, TotalCorrectQuestions: 3},
	})

	question := filled[models.TypeQuestion]
	if question.TotalAmountWon != 500 || question.TotalCorrectQuestions != 3 {
		t.Errorf("Expected recorded QUESTION bucket preserved, got %+v", question)
	}

	number := filled[models.TypeQuestionNumber]
	if number.TotalAmountWon != 0 || number.TotalCorrectQuestions != 0 {
		t.Errorf("Expected zero-filled QUESTION_NUMBER bucket, got %+v", number)
	}
}

func TestFillLossesZeroFillsBothTypes(t *testing.T) {
	filled := fillLosses(map[string]models.TypeLosses{
		models.TypeQuestionNumber: {TotalAmountLost: 250, TotalWrongQuestions: 2},
	})

	if filled[models.TypeQuestion].TotalWrongQuestions != 0 {
		t.Errorf("Expected zero-filled QUESTION bucket, got %+v", filled[models.TypeQuestion])
	}
	if filled[models.TypeQuestionNumber].TotalAmountLost != 250 {
		t.Errorf("Expected recorded QUESTION_NUMBER bucket preserved, got %+v", filled[models.TypeQuestionNumber])
	}
}
