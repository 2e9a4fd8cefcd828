package service

import (
	"context"

	"episode-service/internal/models"
	"episode-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ParticipantService struct {
	Repo *repository.ParticipantRepository
}

func NewParticipantService(repo *repository.ParticipantRepository) *ParticipantService {
	return &ParticipantService{Repo: repo}
}

// CreateParticipant registers a participant. New signups default to Pending;
// status transitions happen outside this service.
func (s *ParticipantService) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	if participant.Status == "" {
		participant.Status = models.StatusPending
	}
	return s.Repo.Create(ctx, participant)
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id primitive.ObjectID) (*models.Participant, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ParticipantService) ListByStatus(ctx context.Context, status string) ([]models.ParticipantProfile, error) {
	return s.Repo.ProfilesByStatus(ctx, status)
}
