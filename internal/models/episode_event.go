package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeQuestion       = "QUESTION"
	TypeQuestionNumber = "QUESTION_NUMBER"
	TypeCodeMix        = "CODE_MIX"
)

// NoResponse is the sentinel stored when a participant gave no answer.
const NoResponse = "No response?"

// EpisodeEvent is a tagged variant over Type: only QUESTION and
// QUESTION_NUMBER events carry the correctness flag.
type EpisodeEvent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EpisodeID     primitive.ObjectID `bson:"episodeId" json:"episodeId"`
	Type          string             `bson:"type" json:"type"`
	Question      string             `bson:"question" json:"question"`
	CorrectAnswer string             `bson:"correctAnswer,omitempty" json:"correctAnswer,omitempty"`
	Response      string             `bson:"response" json:"response"`
	IsCorrect     *bool              `bson:"isCorrect,omitempty" json:"isCorrect,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	Balance       float64            `bson:"balance" json:"balance"`
}

// EpisodeEventDetail is an event joined to its episode and participant.
type EpisodeEventDetail struct {
	EpisodeEvent        `bson:",inline"`
	ParticipantFullName string             `bson:"participantFullName" json:"participantFullName"`
	EpisodeDate         time.Time          `bson:"episodeDate" json:"episodeDate"`
}

func IsQuestionType(eventType string) bool {
	return eventType == TypeQuestion || eventType == TypeQuestionNumber
}

// NormalizeResponse trims the response; an empty result becomes the
// NoResponse sentinel. Normalizing twice yields the same value.
func NormalizeResponse(response string) string {
	trimmed := strings.TrimSpace(response)
	if trimmed == "" {
		return NoResponse
	}
	return trimmed
}

// CheckAnswer reports whether a response matches the correct answer.
// Comparison is case-insensitive and whitespace-trimmed; the NoResponse
// sentinel and a missing correct answer are never correct.
func CheckAnswer(response, correctAnswer string) bool {
	response = NormalizeResponse(response)
	if response == NoResponse {
		return false
	}
	correct := strings.TrimSpace(correctAnswer)
	if correct == "" {
		return false
	}
	return strings.EqualFold(response, correct)
}

// Score normalizes the response and, for question-type events, sets the
// correctness flag. Other types never carry it.
func (e *EpisodeEvent) Score() {
	e.Response = NormalizeResponse(e.Response)
	if !IsQuestionType(e.Type) {
		e.IsCorrect = nil
		return
	}
	correct := CheckAnswer(e.Response, e.CorrectAnswer)
	e.IsCorrect = &correct
}
