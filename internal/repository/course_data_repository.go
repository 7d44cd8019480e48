package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"course_workspace/model"
)

type CourseDataRepository struct {
	contents *mongo.Collection
}

func NewCourseDataRepository(db *mongo.Database) *CourseDataRepository {
	return &CourseDataRepository{contents: db.Collection("course_data")}
}

func (r *CourseDataRepository) Insert(ctx context.Context, content *model.CourseData) (bson.ObjectID, error) {
	if content.Questions == nil {
		content.Questions = []bson.ObjectID{}
	}
	res, err := r.contents.InsertOne(ctx, content)
	if err != nil {
		return bson.NilObjectID, err
	}
	id := res.InsertedID.(bson.ObjectID)
	content.ID = id
	return id, nil
}

func (r *CourseDataRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.CourseData, error) {
	var content model.CourseData
	err := r.contents.FindOne(ctx, bson.M{"_id": id}).Decode(&content)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// AppendQuestion pushes the comment id onto the content's questions list.
// Questions only ever grow here; there is no removal path.
func (r *CourseDataRepository) AppendQuestion(ctx context.Context, contentID, commentID bson.ObjectID) error {
	res, err := r.contents.UpdateOne(ctx,
		bson.M{"_id": contentID},
		bson.M{"$push": bson.M{"questions": commentID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CourseDataRepository) WithQuestions(ctx context.Context, contentID bson.ObjectID) (*model.ContentQuestionsView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": contentID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "comments",
			"localField":   "questions",
			"foreignField": "_id",
			"as":           "questions",
		}}},
	}

	cursor, err := r.contents.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.ContentQuestionsView
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
