package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"course_workspace/model"
)

type CommentRepository struct {
	comments *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{comments: db.Collection("comments")}
}

func (r *CommentRepository) Insert(ctx context.Context, comment *model.Comment) (bson.ObjectID, error) {
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	if comment.Question != "" && comment.QuestionReplies == nil {
		comment.QuestionReplies = []bson.ObjectID{}
	}
	res, err := r.comments.InsertOne(ctx, comment)
	if err != nil {
		return bson.NilObjectID, err
	}
	id := res.InsertedID.(bson.ObjectID)
	comment.ID = id
	return id, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := r.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) AppendReply(ctx context.Context, questionID, replyID bson.ObjectID) error {
	res, err := r.comments.UpdateOne(ctx,
		bson.M{"_id": questionID},
		bson.M{
			"$push": bson.M{"question_replies": replyID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Thread expands a question's replies and resolves the reply authors. The
// author join is best-effort: a missing profile leaves a gap rather than
// failing the read.
func (r *CommentRepository) Thread(ctx context.Context, questionID bson.ObjectID) (*model.QuestionThread, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": questionID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "comments",
			"localField":   "question_replies",
			"foreignField": "_id",
			"as":           "replies",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "replies.user_id",
			"foreignField": "_id",
			"as":           "reply_authors",
		}}},
	}

	cursor, err := r.comments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.QuestionThread
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
