package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"course_workspace/model"
)

type ReviewRepository struct {
	reviews *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{reviews: db.Collection("reviews")}
}

func (r *ReviewRepository) Insert(ctx context.Context, review *model.Review) (bson.ObjectID, error) {
	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now
	if review.CommentReplies == nil {
		review.CommentReplies = []bson.ObjectID{}
	}
	res, err := r.reviews.InsertOne(ctx, review)
	if err != nil {
		return bson.NilObjectID, err
	}
	id := res.InsertedID.(bson.ObjectID)
	review.ID = id
	return id, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Review, error) {
	var review model.Review
	err := r.reviews.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) AppendReply(ctx context.Context, reviewID, commentID bson.ObjectID) error {
	res, err := r.reviews.UpdateOne(ctx,
		bson.M{"_id": reviewID},
		bson.M{
			"$push": bson.M{"comment_replies": commentID},
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

// ListByCourse returns up to limit of the course's reviews newest first with
// each author's name and avatar resolved.
func (r *ReviewRepository) ListByCourse(ctx context.Context, courseID bson.ObjectID, limit int64) ([]model.ReviewWithAuthor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"course": courseID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "author",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"name": 1, "avatar": 1}},
			},
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.reviews.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.ReviewWithAuthor
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
