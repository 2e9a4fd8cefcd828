package models

import (
	"testing"
)

func TestNormalizeResponse(t *testing.T) {
	testCases := []struct {
		name     string
		response string
		expected string
	}{
		{"plain answer", "Paris", "Paris"},
		{"trailing space trimmed", "Paris ", "Paris"},
		{"surrounding whitespace trimmed", "  Lagos\t", "Lagos"},
		{"empty becomes sentinel", "", NoResponse},
		{"whitespace only becomes sentinel", "   ", NoResponse},
		{"sentinel stays sentinel", NoResponse, NoResponse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeResponse(tc.response)
			if got != tc.expected {
				t.Errorf("NormalizeResponse(%q) = %q, want %q", tc.response, got, tc.expected)
			}

			// Normalization must be idempotent
			again := NormalizeResponse(got)
			if again != got {
				t.Errorf("NormalizeResponse not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCheckAnswer(t *testing.T) {
	testCases := []struct {
		name          string
		response      string
		correctAnswer string
		expected      bool
	}{
		{"exact match", "Paris", "Paris", true},
		{"case insensitive", "paris", "PARIS", true},
		{"whitespace insensitive", "Paris ", "paris", true},
		{"wrong answer", "Rome", "Paris", false},
		{"empty response never correct", "", "Paris", false},
		{"whitespace response never correct", "  ", "Paris", false},
		{"sentinel never correct", NoResponse, NoResponse, false},
		{"missing correct answer never correct", "Paris", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckAnswer(tc.response, tc.correctAnswer)
			if got != tc.expected {
				t.Errorf("CheckAnswer(%q, %q) = %v, want %v", tc.response, tc.correctAnswer, got, tc.expected)
			}
		})
	}
}

func TestScoreQuestionTypes(t *testing.T) {
	testCases := []struct {
		name           string
		eventType      string
		response       string
		correctAnswer  string
		expectResponse string
		expectCorrect  bool
		expectHasScore bool
	}{
		{"question correct", TypeQuestion, "paris", "Paris", "paris", true, true},
		{"question wrong", TypeQuestion, "Rome", "Paris", "Rome", false, true},
		{"question unanswered", TypeQuestion, "", "Rome", NoResponse, false, true},
		{"question number correct", TypeQuestionNumber, "42 ", "42", "42", true, true},
		{"code mix never scored", TypeCodeMix, "wahala", "", "wahala", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := &EpisodeEvent{
				Type:          tc.eventType,
				Response:      tc.response,
				CorrectAnswer: tc.correctAnswer,
			}
			event.Score()

			if event.Response != tc.expectResponse {
				t.Errorf("Expected response %q, got %q", tc.expectResponse, event.Response)
			}
			if !tc.expectHasScore {
				if event.IsCorrect != nil {
					t.Errorf("Expected no isCorrect for type %s, got %v", tc.eventType, *event.IsCorrect)
				}
				return
			}
			if event.IsCorrect == nil {
				t.Fatalf("Expected isCorrect to be set for type %s", tc.eventType)
			}
			if *event.IsCorrect != tc.expectCorrect {
				t.Errorf("Expected isCorrect %v, got %v", tc.expectCorrect, *event.IsCorrect)
			}
		})
	}
}

func TestIsQuestionType(t *testing.T) {
	if !IsQuestionType(TypeQuestion) || !IsQuestionType(TypeQuestionNumber) {
		t.Error("Expected QUESTION and QUESTION_NUMBER to be question types")
	}
	if IsQuestionType(TypeCodeMix) || IsQuestionType("OTHER") {
		t.Error("Expected CODE_MIX and OTHER not to be question types")
	}
}
