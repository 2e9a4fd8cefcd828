package service

import (
	"testing"

	"episode-service/internal/models"
)

func TestDetailMessage(t *testing.T) {
	events := []models.EpisodeEventDetail{
		{ParticipantFullName: "Ada Obi"},
		{ParticipantFullName: "Ada Obi"},
	}

	got := DetailMessage(events)
	want := "Found 2 event(s) for Ada Obi"
	if got != want {
		t.Errorf("DetailMessage = %q, want %q", got, want)
	}
}

func TestDetailMessageSingleEvent(t *testing.T) {
	events := []models.EpisodeEventDetail{
		{ParticipantFullName: "Chidi Eze"},
	}

	got := DetailMessage(events)
	want := "Found 1 event(s) for Chidi Eze"
	if got != want {
		t.Errorf("DetailMessage = %q, want %q", got, want)
	}
}
