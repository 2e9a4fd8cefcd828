package service

import (
	"testing"

	"episode-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildEventScoresQuestionBatch(t *testing.T) {
	episodeID := primitive.NewObjectID()
	inputs := []EventInput{
		{Type: models.TypeQuestion, Question: "Capital of France?", CorrectAnswer: "Paris", Response: "paris", Amount: 100},
		{Type: models.TypeQuestion, Question: "Capital of Italy?", CorrectAnswer: "Rome", Response: "", Amount: 50},
	}

	first := BuildEvent(episodeID, inputs[0])
	if first.IsCorrect == nil || !*first.IsCorrect {
		t.Error("Expected first event to be correct")
	}
	if first.Response != "paris" {
		t.Errorf("Expected response %q, got %q", "paris", first.Response)
	}

	second := BuildEvent(episodeID, inputs[1])
	if second.IsCorrect == nil || *second.IsCorrect {
		t.Error("Expected second event to be incorrect")
	}
	if second.Response != models.NoResponse {
		t.Errorf("Expected response %q, got %q", models.NoResponse, second.Response)
	}

	if first.EpisodeID != episodeID || second.EpisodeID != episodeID {
		t.Error("Expected events to reference the submitted episode")
	}
	if first.Amount != 100 || second.Amount != 50 {
		t.Error("Expected amounts to carry over unchanged")
	}
}

func TestBuildEventCodeMixCarriesNoCorrectness(t *testing.T) {
	event := BuildEvent(primitive.NewObjectID(), EventInput{
		Type:     models.TypeCodeMix,
		Response: " wahala ",
		Amount:   200,
	})

	if event.IsCorrect != nil {
		t.Errorf("Expected no isCorrect on CODE_MIX event, got %v", *event.IsCorrect)
	}
	if event.Response != "wahala" {
		t.Errorf("Expected trimmed response %q, got %q", "wahala", event.Response)
	}
}
