// Package store declares the persistence interfaces the services are built
// against. Mongo implementations live in internal/repository, the redis
// cache in internal/cache; tests supply in-memory doubles.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"course_workspace/model"
)

type CourseStore interface {
	Insert(ctx context.Context, course *model.Course) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Course, error)
	Patch(ctx context.Context, id bson.ObjectID, patch model.CoursePatch) (*model.Course, error)
	// SetRatings persists the derived mean rating onto the course document.
	SetRatings(ctx context.Context, id bson.ObjectID, ratings float64) error
	// Aggregate joins the course with its reviews and computes
	// total_reviews and avg_rating.
	Aggregate(ctx context.Context, id bson.ObjectID) (*model.CourseAggregate, error)
	// WithContent joins the course with its CourseData (title/description
	// only) and reviews for the public single-course read.
	WithContent(ctx context.Context, id bson.ObjectID) (*model.CourseAggregate, error)
	List(ctx context.Context) (*model.CourseList, error)
	ListNewestFirst(ctx context.Context) ([]model.Course, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type ContentStore interface {
	Insert(ctx context.Context, content *model.CourseData) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.CourseData, error)
	AppendQuestion(ctx context.Context, contentID, commentID bson.ObjectID) error
	// WithQuestions resolves the questions id list into comment documents.
	WithQuestions(ctx context.Context, contentID bson.ObjectID) (*model.ContentQuestionsView, error)
}

type CommentStore interface {
	Insert(ctx context.Context, comment *model.Comment) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	AppendReply(ctx context.Context, questionID, replyID bson.ObjectID) error
	// Thread resolves a question's replies and their authors.
	Thread(ctx context.Context, questionID bson.ObjectID) (*model.QuestionThread, error)
}

type ReviewStore interface {
	Insert(ctx context.Context, review *model.Review) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Review, error)
	AppendReply(ctx context.Context, reviewID, commentID bson.ObjectID) error
	ListByCourse(ctx context.Context, courseID bson.ObjectID, limit int64) ([]model.ReviewWithAuthor, error)
}

type NotificationStore interface {
	Insert(ctx context.Context, note *model.Notification) error
}

type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.UserProfile, error)
}

// Cache memoizes read responses by key; writers invalidate with Del.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
