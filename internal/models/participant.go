package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

type Participant struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName          string             `bson:"fullName" json:"fullName"`
	Email             string             `bson:"email" json:"email"`
	State             string             `bson:"state" json:"state"`
	Gender            string             `bson:"gender" json:"gender"`
	Status            string             `bson:"status" json:"status"`
	SocialMediaHandle string             `bson:"socialMediaHandle" json:"socialMediaHandle"`
}

// ParticipantProfile is the projection returned for the request pool.
type ParticipantProfile struct {
	FullName          string `bson:"fullName" json:"fullName"`
	Email             string `bson:"email" json:"email"`
	State             string `bson:"state" json:"state"`
	Gender            string `bson:"gender" json:"gender"`
	Status            string `bson:"status" json:"status"`
	SocialMediaHandle string `bson:"socialMediaHandle" json:"socialMediaHandle"`
}
