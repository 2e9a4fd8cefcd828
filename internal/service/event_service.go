package service

import (
	"context"

	"episode-service/internal/models"
	"episode-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventService struct {
	Events   *repository.EventRepository
	Episodes *repository.EpisodeRepository
}

func NewEventService(events *repository.EventRepository, episodes *repository.EpisodeRepository) *EventService {
	return &EventService{Events: events, Episodes: episodes}
}

// EventInput is one submitted event before normalization and scoring.
type EventInput struct {
	Question      string  `json:"question"`
	CorrectAnswer string  `json:"correctAnswer"`
	Response      string  `json:"response"`
	Type          string  `json:"type" binding:"required"`
	Amount        float64 `json:"amount"`
	Balance       float64 `json:"balance"`
}

// BuildEvent applies the normalization and scoring rules to one submission.
func BuildEvent(episodeID primitive.ObjectID, in EventInput) models.EpisodeEvent {
	event := models.EpisodeEvent{
		EpisodeID:     episodeID,
		Type:          in.Type,
		Question:      in.Question,
		CorrectAnswer: in.CorrectAnswer,
		Response:      in.Response,
		Amount:        in.Amount,
		Balance:       in.Balance,
	}
	event.Score()
	return event
}

// RecordEvents persists the submitted events strictly in submission order.
// The first store failure aborts the batch; events already written stay
// written.
func (s *EventService) RecordEvents(ctx context.Context, episodeID primitive.ObjectID, inputs []EventInput) ([]models.EpisodeEvent, error) {
	if _, err := s.Episodes.FindByID(ctx, episodeID); err != nil {
		return nil, err
	}
	recorded := make([]models.EpisodeEvent, 0, len(inputs))
	for _, in := range inputs {
		event := BuildEvent(episodeID, in)
		if err := s.Events.Create(ctx, &event); err != nil {
			return nil, err
		}
		recorded = append(recorded, event)
	}
	return recorded, nil
}
