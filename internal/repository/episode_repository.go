package repository

import (
	"context"

	"episode-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EpisodeRepository struct {
	Col *mongo.Collection
}

func NewEpisodeRepository(db *mongo.Database) *EpisodeRepository {
	return &EpisodeRepository{Col: db.Collection("episodes")}
}

func (r *EpisodeRepository) Create(ctx context.Context, episode *models.Episode) error {
	res, err := r.Col.InsertOne(ctx, episode)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		episode.ID = oid
	}
	return nil
}

func (r *EpisodeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Episode, error) {
	var episode models.Episode
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&episode)
	if err != nil {
		return nil, err
	}
	return &episode, nil
}

func (r *EpisodeRepository) FindAll(ctx context.Context) ([]models.Episode, error) {
	opts := options.Find().SetSort(bson.M{"episodeDate": -1})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var episodes []models.Episode
	if err := cur.All(ctx, &episodes); err != nil {
		return nil, err
	}
	return episodes, nil
}

// LinkIndex returns all episodes newest first, projected to link and id.
func (r *EpisodeRepository) LinkIndex(ctx context.Context) ([]models.EpisodeLink, error) {
	opts := options.Find().
		SetSort(bson.M{"episodeDate": -1}).
		SetProjection(bson.M{"episodeLink": 1})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var links []models.EpisodeLink
	if err := cur.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// TotalAmountWon sums amountWon across all episodes. No episodes means zero.
func (r *EpisodeRepository) TotalAmountWon(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":            nil,
			"totalAmountWon": bson.M{"$sum": "$amountWon"},
		}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)
	var rows []struct {
		TotalAmountWon float64 `bson:"totalAmountWon"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalAmountWon, nil
}
