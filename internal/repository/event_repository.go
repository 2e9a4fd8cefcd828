package repository

import (
	"context"

	"episode-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var questionTypes = []string{models.TypeQuestion, models.TypeQuestionNumber}

type EventRepository struct {
	Col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{Col: db.Collection("episodeevents")}
}

func (r *EventRepository) Create(ctx context.Context, event *models.EpisodeEvent) error {
	res, err := r.Col.InsertOne(ctx, event)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid
	}
	return nil
}

// FindDetailByEpisode returns the episode's events joined to their episode
// and its participant, restricted to participants with Completed status.
// Events of episodes whose participant has not completed are filtered out
// here, so callers may see an empty result even when events exist.
func (r *EventRepository) FindDetailByEpisode(ctx context.Context, episodeID primitive.ObjectID) ([]models.EpisodeEventDetail, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"episodeId": episodeID}},
		{"$lookup": bson.M{
			"from":         "episodes",
			"localField":   "episodeId",
			"foreignField": "_id",
			"as":           "episode",
		}},
		{"$unwind": "$episode"},
		{"$lookup": bson.M{
			"from":         "participants",
			"localField":   "episode.participant",
			"foreignField": "_id",
			"as":           "participant",
		}},
		{"$unwind": "$participant"},
		{"$match": bson.M{"participant.status": models.StatusCompleted}},
		{"$addFields": bson.M{
			"participantFullName": "$participant.fullName",
			"episodeDate":         "$episode.episodeDate",
		}},
		{"$project": bson.M{"episode": 0, "participant": 0}},
		{"$sort": bson.M{"_id": 1}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var events []models.EpisodeEventDetail
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// QuestionSummary counts all question-type events and collects their
// question texts.
func (r *EventRepository) QuestionSummary(ctx context.Context) (int64, []string, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"type": bson.M{"$in": questionTypes}}},
		{"$group": bson.M{
			"_id":       nil,
			"count":     bson.M{"$sum": 1},
			"questions": bson.M{"$push": "$question"},
		}},
	}
	return r.textSummary(ctx, pipeline, "questions")
}

// CorrectAnswerSummary counts events answered correctly and collects their
// correct-answer texts.
func (r *EventRepository) CorrectAnswerSummary(ctx context.Context) (int64, []string, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"isCorrect": true}},
		{"$group": bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"answers": bson.M{"$push": "$correctAnswer"},
		}},
	}
	return r.textSummary(ctx, pipeline, "answers")
}

func (r *EventRepository) textSummary(ctx context.Context, pipeline []bson.M, field string) (int64, []string, error) {
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, nil, err
	}
	defer cur.Close(ctx)
	var rows []bson.M
	if err := cur.All(ctx, &rows); err != nil {
		return 0, nil, err
	}
	if len(rows) == 0 {
		return 0, nil, nil
	}
	var count int64
	switch v := rows[0]["count"].(type) {
	case int32:
		count = int64(v)
	case int64:
		count = v
	}
	var texts []string
	if raw, ok := rows[0][field].(bson.A); ok {
		for _, item := range raw {
			if text, ok := item.(string); ok {
				texts = append(texts, text)
			}
		}
	}
	return count, texts, nil
}

// AmountWonByType sums the amounts and counts of correctly answered
// question-type events, grouped by event type.
func (r *EventRepository) AmountWonByType(ctx context.Context) (map[string]models.TypeWinnings, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"type":      bson.M{"$in": questionTypes},
			"isCorrect": true,
		}},
		{"$group": bson.M{
			"_id":                   "$type",
			"totalAmountWon":        bson.M{"$sum": "$amount"},
			"totalCorrectQuestions": bson.M{"$sum": 1},
		}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []struct {
		Type                  string  `bson:"_id"`
		TotalAmountWon        float64 `bson:"totalAmountWon"`
		TotalCorrectQuestions int64   `bson:"totalCorrectQuestions"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	winnings := make(map[string]models.TypeWinnings, len(rows))
	for _, row := range rows {
		winnings[row.Type] = models.TypeWinnings{
			TotalAmountWon:        row.TotalAmountWon,
			TotalCorrectQuestions: row.TotalCorrectQuestions,
		}
	}
	return winnings, nil
}

// AmountLostByType sums the amounts and counts of incorrectly answered
// question-type events, grouped by event type.
func (r *EventRepository) AmountLostByType(ctx context.Context) (map[string]models.TypeLosses, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"type":      bson.M{"$in": questionTypes},
			"isCorrect": false,
		}},
		{"$group": bson.M{
			"_id":                 "$type",
			"totalAmountLost":     bson.M{"$sum": "$amount"},
			"totalWrongQuestions": bson.M{"$sum": 1},
		}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []struct {
		Type                string  `bson:"_id"`
		TotalAmountLost     float64 `bson:"totalAmountLost"`
		TotalWrongQuestions int64   `bson:"totalWrongQuestions"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	losses := make(map[string]models.TypeLosses, len(rows))
	for _, row := range rows {
		losses[row.Type] = models.TypeLosses{
			TotalAmountLost:     row.TotalAmountLost,
			TotalWrongQuestions: row.TotalWrongQuestions,
		}
	}
	return losses, nil
}

// CountQuestions counts all question-type events regardless of correctness.
func (r *EventRepository) CountQuestions(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"type": bson.M{"$in": questionTypes}})
}

// CodemixLossByResponse sums the amount lost per distinct code-mix response,
// largest loss first. Ties break on the response text ascending so the
// ranking is deterministic.
func (r *EventRepository) CodemixLossByResponse(ctx context.Context) ([]models.CodemixLoss, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"type": models.TypeCodeMix}},
		{"$group": bson.M{
			"_id":             "$response",
			"totalAmountLost": bson.M{"$sum": "$amount"},
		}},
		{"$sort": bson.D{{Key: "totalAmountLost", Value: -1}, {Key: "_id", Value: 1}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var losses []models.CodemixLoss
	if err := cur.All(ctx, &losses); err != nil {
		return nil, err
	}
	return losses, nil
}

// CodemixResponseCounts counts how often each distinct code-mix response was
// given.
func (r *EventRepository) CodemixResponseCounts(ctx context.Context) ([]models.CodemixResponseCount, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"type": models.TypeCodeMix}},
		{"$group": bson.M{
			"_id":   "$response",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var counts []models.CodemixResponseCount
	if err := cur.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
