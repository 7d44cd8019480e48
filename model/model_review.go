package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Review links exactly one course. CommentReplies holds ids of reply
// Comment documents. No uniqueness on (user, course): a user may review the
// same course more than once and every review counts toward the mean.
type Review struct {
	ID             bson.ObjectID   `json:"id"             bson:"_id,omitempty"`
	UserID         bson.ObjectID   `json:"userId"         bson:"user_id"`
	CourseID       bson.ObjectID   `json:"courseId"       bson:"course"`
	Rating         float64         `json:"rating"         bson:"rating"`
	Comment        string          `json:"comment"        bson:"comment"`
	CommentReplies []bson.ObjectID `json:"commentReplies" bson:"comment_replies"`
	CreatedAt      time.Time       `json:"createdAt"      bson:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt"      bson:"updated_at"`
}
