package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"course_workspace/model"
)

type NotificationRepository struct {
	notes *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{notes: db.Collection("notifications")}
}

func (r *NotificationRepository) Insert(ctx context.Context, note *model.Notification) error {
	if note.Status == "" {
		note.Status = "unread"
	}
	note.CreatedAt = time.Now().UTC()
	res, err := r.notes.InsertOne(ctx, note)
	if err != nil {
		return err
	}
	note.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
