package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"course_workspace/configs"
	"course_workspace/dto"
	"course_workspace/internal/apperr"
	"course_workspace/internal/authctx"
	"course_workspace/internal/store"
	"course_workspace/model"
)

// ReviewService runs the review/reply workflow. Course.ratings is derived:
// the full mean over every review for the course is recomputed after each
// insert and written back. Concurrent submissions race benignly on that
// write; last writer wins.
type ReviewService struct {
	courses  store.CourseStore
	reviews  store.ReviewStore
	comments store.CommentStore
	notes    store.NotificationStore
	cache    store.Cache
	log      *zap.Logger
}

func NewReviewService(
	courses store.CourseStore,
	reviews store.ReviewStore,
	comments store.CommentStore,
	notes store.NotificationStore,
	cache store.Cache,
	log *zap.Logger,
) *ReviewService {
	return &ReviewService{
		courses:  courses,
		reviews:  reviews,
		comments: comments,
		notes:    notes,
		cache:    cache,
		log:      log,
	}
}

// AddReview creates a review for an enrolled viewer, invalidates the
// course's cached read, recomputes the mean rating and returns the course
// aggregate. Nothing dedupes repeat reviews by the same user; each one
// counts toward the mean.
func (s *ReviewService) AddReview(ctx context.Context, viewer authctx.Viewer, courseIDHex string, req dto.AddReviewReq) (*model.CourseAggregate, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	courseID, err := bson.ObjectIDFromHex(courseIDHex)
	if err != nil {
		return nil, apperr.Invalid("invalid course id")
	}
	viewerID, err := bson.ObjectIDFromHex(viewer.ID)
	if err != nil {
		return nil, apperr.Invalid("invalid user id")
	}

	if !viewer.EnrolledIn(courseIDHex) {
		return nil, apperr.Forbiddenf("you are not enrolled in this course")
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if course == nil {
		return nil, apperr.NotFoundf("course not found")
	}

	review := &model.Review{
		UserID:   viewerID,
		CourseID: courseID,
		Rating:   req.Rating,
		Comment:  req.Review,
	}
	if _, err := s.reviews.Insert(ctx, review); err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "could not save review", err)
	}

	if err := s.cache.Del(ctx, configs.CourseCacheKey(courseIDHex)); err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "cache invalidation failed", err)
	}

	agg, err := s.courses.Aggregate(ctx, courseID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if agg == nil {
		return nil, apperr.New(apperr.Unexpected, "course aggregation failed")
	}

	if err := s.courses.SetRatings(ctx, courseID, agg.AvgRating); err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "could not persist ratings", err)
	}

	s.notify(ctx, &model.Notification{
		UserID:  viewerID,
		Title:   "New Review Received",
		Message: viewer.Name + " has reviewed " + course.Name,
	})

	return agg, nil
}

// AddReplyToReview creates a reply comment and links its id into the
// review's reply list, then returns the updated review.
func (s *ReviewService) AddReplyToReview(ctx context.Context, viewer authctx.Viewer, req dto.AddReviewReplyReq) (*model.Review, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	courseID, err := bson.ObjectIDFromHex(req.CourseID)
	if err != nil {
		return nil, apperr.Invalid("invalid course or review id")
	}
	reviewID, err := bson.ObjectIDFromHex(req.ReviewID)
	if err != nil {
		return nil, apperr.Invalid("invalid course or review id")
	}
	viewerID, err := bson.ObjectIDFromHex(viewer.ID)
	if err != nil {
		return nil, apperr.Invalid("invalid user id")
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if course == nil {
		return nil, apperr.NotFoundf("course not found")
	}

	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if review == nil {
		return nil, apperr.NotFoundf("review not found")
	}
	if review.CourseID != courseID {
		return nil, apperr.Invalid("review does not belong to this course")
	}

	reply := &model.Comment{
		UserID: viewerID,
		Answer: req.Comment,
	}
	replyID, err := s.comments.Insert(ctx, reply)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "could not save reply", err)
	}

	if err := s.reviews.AppendReply(ctx, reviewID, replyID); err != nil {
		s.log.Warn("orphan review reply",
			zap.String("comment_id", replyID.Hex()),
			zap.String("review_id", reviewID.Hex()),
			zap.Error(err))
		return nil, apperr.Wrap(apperr.Dependency, "could not attach reply to review", err)
	}

	if err := s.cache.Del(ctx, configs.CourseCacheKey(req.CourseID)); err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "cache invalidation failed", err)
	}

	updated, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if updated == nil {
		return nil, apperr.NotFoundf("review not found")
	}
	return updated, nil
}

// ListReviews returns a course's reviews newest first with each author's
// name and avatar resolved. A non-positive limit falls back to the default
// page size; anything above the maximum is clamped.
func (s *ReviewService) ListReviews(ctx context.Context, courseIDHex string, limit int64) ([]model.ReviewWithAuthor, error) {
	courseID, err := bson.ObjectIDFromHex(courseIDHex)
	if err != nil {
		return nil, apperr.Invalid("invalid course id")
	}
	if limit <= 0 {
		limit = configs.DefaultLimitReviews
	}
	if limit > configs.MaxLimitReviews {
		limit = configs.MaxLimitReviews
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if course == nil {
		return nil, apperr.NotFoundf("course not found")
	}

	reviews, err := s.reviews.ListByCourse(ctx, courseID, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if reviews == nil {
		reviews = []model.ReviewWithAuthor{}
	}
	return reviews, nil
}

func (s *ReviewService) notify(ctx context.Context, note *model.Notification) {
	if err := s.notes.Insert(ctx, note); err != nil {
		s.log.Warn("notification write failed",
			zap.String("title", note.Title),
			zap.Error(err))
	}
}
