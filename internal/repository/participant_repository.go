package repository

import (
	"context"

	"episode-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ParticipantRepository struct {
	Col *mongo.Collection
}

func NewParticipantRepository(db *mongo.Database) *ParticipantRepository {
	return &ParticipantRepository{Col: db.Collection("participants")}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	res, err := r.Col.InsertOne(ctx, participant)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		participant.ID = oid
	}
	return nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Participant, error) {
	var participant models.Participant
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&participant)
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// ProfilesByStatus returns participants with the given status, projected to
// profile fields only.
func (r *ParticipantRepository) ProfilesByStatus(ctx context.Context, status string) ([]models.ParticipantProfile, error) {
	opts := options.Find().SetProjection(bson.M{
		"_id":               0,
		"fullName":          1,
		"email":             1,
		"state":             1,
		"gender":            1,
		"status":            1,
		"socialMediaHandle": 1,
	})
	cur, err := r.Col.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var profiles []models.ParticipantProfile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
