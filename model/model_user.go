package model

import "go.mongodb.org/mongo-driver/v2/bson"

// UserProfile is the slice of the users collection this module reads for
// author joins and mail addressing. Account management lives elsewhere.
type UserProfile struct {
	ID     bson.ObjectID `json:"id"              bson:"_id"`
	Name   string        `json:"name"            bson:"name"`
	Email  string        `json:"email,omitempty" bson:"email,omitempty"`
	Avatar Thumbnail     `json:"avatar"          bson:"avatar,omitempty"`
}
