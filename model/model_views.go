package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Join-like read shapes produced by aggregation pipelines. Each mirrors its
// base document with reference arrays resolved in place.

// ContentQuestionsView is CourseData with the questions id list expanded to
// the comment documents themselves.
type ContentQuestionsView struct {
	ID           bson.ObjectID `json:"id"           bson:"_id"`
	Title        string        `json:"title"        bson:"title"`
	Description  string        `json:"description"  bson:"description"`
	VideoURL     string        `json:"videoUrl"     bson:"video_url"`
	VideoSection string        `json:"videoSection" bson:"video_section,omitempty"`
	Suggestion   string        `json:"suggestion"   bson:"suggestion,omitempty"`
	Questions    []Comment     `json:"questions"    bson:"questions"`
}

// QuestionThread is a question comment with its replies expanded and the
// reply authors resolved best-effort.
type QuestionThread struct {
	ID           bson.ObjectID `json:"id"           bson:"_id"`
	UserID       bson.ObjectID `json:"userId"       bson:"user_id"`
	Question     string        `json:"question"     bson:"question"`
	Replies      []Comment     `json:"replies"      bson:"replies"`
	ReplyAuthors []UserProfile `json:"replyAuthors" bson:"reply_authors"`
	CreatedAt    time.Time     `json:"createdAt"    bson:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt"    bson:"updated_at"`
}

// CourseAggregate is a course plus its derived review figures.
type CourseAggregate struct {
	Course       `bson:",inline"`
	TotalReviews int     `json:"totalReviews" bson:"total_reviews"`
	AvgRating    float64 `json:"avgRating"    bson:"avg_rating"`
}

// ReviewWithAuthor resolves the review author's public profile.
type ReviewWithAuthor struct {
	Review `bson:",inline"`
	Author UserProfile `json:"author" bson:"author"`
}

// CourseList is the cached shape of the course listing.
type CourseList struct {
	Courses []Course `json:"courses"`
	Total   int64    `json:"total"`
}
