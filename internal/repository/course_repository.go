package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"course_workspace/model"
)

type CourseRepository struct {
	courses *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{courses: db.Collection("courses")}
}

func (r *CourseRepository) Insert(ctx context.Context, course *model.Course) (bson.ObjectID, error) {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	res, err := r.courses.InsertOne(ctx, course)
	if err != nil {
		return bson.NilObjectID, err
	}
	id := res.InsertedID.(bson.ObjectID)
	course.ID = id
	return id, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Course, error) {
	var course model.Course
	err := r.courses.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Patch(ctx context.Context, id bson.ObjectID, patch model.CoursePatch) (*model.Course, error) {
	set, err := toSetDoc(patch)
	if err != nil {
		return nil, err
	}
	set["updated_at"] = time.Now().UTC()

	var course model.Course
	err = r.courses.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) SetRatings(ctx context.Context, id bson.ObjectID, ratings float64) error {
	_, err := r.courses.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"ratings":    ratings,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

func (r *CourseRepository) Aggregate(ctx context.Context, id bson.ObjectID) (*model.CourseAggregate, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "reviews",
			"localField":   "_id",
			"foreignField": "course",
			"as":           "reviews",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"total_reviews": bson.M{"$size": "$reviews"},
			"avg_rating":    bson.M{"$ifNull": bson.A{bson.M{"$avg": "$reviews.rating"}, 0}},
		}}},
		{{Key: "$project", Value: bson.M{"reviews": 0}}},
	}
	return r.aggregateOne(ctx, pipeline)
}

func (r *CourseRepository) WithContent(ctx context.Context, id bson.ObjectID) (*model.CourseAggregate, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "course_data",
			"localField":   "course_data_ref",
			"foreignField": "_id",
			"as":           "course_data",
			// drop the fields a non-purchaser must not see
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"title": 1, "description": 1}},
			},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "reviews",
			"localField":   "_id",
			"foreignField": "course",
			"as":           "reviews",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"total_reviews": bson.M{"$size": "$reviews"},
			"avg_rating":    bson.M{"$ifNull": bson.A{bson.M{"$avg": "$reviews.rating"}, 0}},
		}}},
		{{Key: "$project", Value: bson.M{"reviews": 0}}},
	}
	return r.aggregateOne(ctx, pipeline)
}

func (r *CourseRepository) aggregateOne(ctx context.Context, pipeline mongo.Pipeline) (*model.CourseAggregate, error) {
	cursor, err := r.courses.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.CourseAggregate
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *CourseRepository) List(ctx context.Context) (*model.CourseList, error) {
	cursor, err := r.courses.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []model.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return &model.CourseList{Courses: courses, Total: int64(len(courses))}, nil
}

func (r *CourseRepository) ListNewestFirst(ctx context.Context) ([]model.Course, error) {
	cursor, err := r.courses.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []model.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.courses.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// toSetDoc marshals a patch through bson so only its non-nil fields land in
// the $set document.
func toSetDoc(patch model.CoursePatch) (bson.M, error) {
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, err
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	return set, nil
}
