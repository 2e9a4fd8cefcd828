package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Episode struct {
	ID                        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EpisodeLink               string             `bson:"episodeLink" json:"episodeLink"`
	EpisodeDate               time.Time          `bson:"episodeDate" json:"episodeDate"`
	TotalAmountAvailableToWin float64            `bson:"totalAmountAvailableToWin" json:"totalAmountAvailableToWin"`
	AmountWon                 float64            `bson:"amountWon" json:"amountWon"`
	Participant               primitive.ObjectID `bson:"participant" json:"participant"`
}

// EpisodeLink is the link-index projection of an episode.
type EpisodeLink struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	EpisodeLink string             `bson:"episodeLink" json:"episodeLink"`
}
