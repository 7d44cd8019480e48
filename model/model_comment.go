package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment is a flat annotation document. A top-level question carries
// Question text and a (possibly empty) QuestionReplies id list; an answer or
// review reply carries Answer text and no reply list of its own. Replies are
// full documents linked by id, not an embedded tree.
type Comment struct {
	ID              bson.ObjectID   `json:"id"                 bson:"_id,omitempty"`
	UserID          bson.ObjectID   `json:"userId"             bson:"user_id"`
	Question        string          `json:"question,omitempty" bson:"question,omitempty"`
	Answer          string          `json:"answer,omitempty"   bson:"answer,omitempty"`
	QuestionReplies []bson.ObjectID `json:"questionReplies"    bson:"question_replies"`
	CreatedAt       time.Time       `json:"createdAt"          bson:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt"          bson:"updated_at"`
}
