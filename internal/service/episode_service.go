package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"episode-service/internal/models"
	"episode-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoQualifyingEvents is returned when an episode has no events visible
// through the Completed-participant gate.
var ErrNoQualifyingEvents = errors.New("no events found for this episode")

type EpisodeService struct {
	Episodes *repository.EpisodeRepository
	Events   *repository.EventRepository
}

func NewEpisodeService(episodes *repository.EpisodeRepository, events *repository.EventRepository) *EpisodeService {
	return &EpisodeService{Episodes: episodes, Events: events}
}

type EpisodeDetail struct {
	Message                   string                      `json:"message"`
	Events                    []models.EpisodeEventDetail `json:"events"`
	EpisodeLink               string                      `json:"episodeLink"`
	EpisodeDate               time.Time                   `json:"episodeDate"`
	TotalAmountAvailableToWin float64                     `json:"totalAmountAvailableToWin"`
}

func (s *EpisodeService) GetEpisodeDetail(ctx context.Context, id primitive.ObjectID) (*EpisodeDetail, error) {
	episode, err := s.Episodes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	events, err := s.Events.FindDetailByEpisode(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNoQualifyingEvents
	}
	return &EpisodeDetail{
		Message:                   DetailMessage(events),
		Events:                    events,
		EpisodeLink:               episode.EpisodeLink,
		EpisodeDate:               episode.EpisodeDate,
		TotalAmountAvailableToWin: episode.TotalAmountAvailableToWin,
	}, nil
}

// DetailMessage summarizes an episode's event list by participant name and
// event count.
func DetailMessage(events []models.EpisodeEventDetail) string {
	return fmt.Sprintf("Found %d event(s) for %s", len(events), events[0].ParticipantFullName)
}

func (s *EpisodeService) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	return s.Episodes.Create(ctx, episode)
}

func (s *EpisodeService) ListEpisodes(ctx context.Context) ([]models.Episode, error) {
	return s.Episodes.FindAll(ctx)
}
