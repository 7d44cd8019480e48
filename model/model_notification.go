package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Notification struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Title     string        `json:"title"     bson:"title"`
	Message   string        `json:"message"   bson:"message"`
	Status    string        `json:"status"    bson:"status"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
