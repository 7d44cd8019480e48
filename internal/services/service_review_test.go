package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"course_workspace/configs"
	"course_workspace/dto"
	"course_workspace/internal/apperr"
	"course_workspace/internal/authctx"
	"course_workspace/model"
)

type reviewFixture struct {
	svc    *ReviewService
	stores *memStores
	cache  *memCache

	courseID bson.ObjectID
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	m := newMemStores()
	c := newMemCache()
	svc := NewReviewService(m, memReviews{m}, memComments{m}, memNotes{m}, c, zap.NewNop())

	courseID := bson.NewObjectID()
	m.courses[courseID] = &model.Course{ID: courseID, Name: "Intro to Go"}

	return &reviewFixture{svc: svc, stores: m, cache: c, courseID: courseID}
}

func enrolledViewer(courseID bson.ObjectID) authctx.Viewer {
	return authctx.Viewer{
		ID:      bson.NewObjectID().Hex(),
		Name:    "Ada",
		Email:   "ada@example.com",
		Courses: []string{courseID.Hex()},
	}
}

func TestAddReviewRecomputesMean(t *testing.T) {
	fx := newReviewFixture(t)
	viewer := enrolledViewer(fx.courseID)

	agg, err := fx.svc.AddReview(context.Background(), viewer, fx.courseID.Hex(), dto.AddReviewReq{
		Review: "Loved it.",
		Rating: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, agg.TotalReviews)
	assert.InDelta(t, 5.0, agg.AvgRating, 1e-9)
	assert.InDelta(t, 5.0, fx.stores.courses[fx.courseID].Ratings, 1e-9)

	agg, err = fx.svc.AddReview(context.Background(), viewer, fx.courseID.Hex(), dto.AddReviewReq{
		Review: "On reflection, decent.",
		Rating: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, agg.TotalReviews)
	assert.InDelta(t, 4.0, agg.AvgRating, 1e-9)
	assert.InDelta(t, 4.0, fx.stores.courses[fx.courseID].Ratings, 1e-9)

	// per-course cache entry invalidated on each submission
	assert.Contains(t, fx.cache.dels, configs.CourseCacheKey(fx.courseID.Hex()))

	// review notice recorded each time
	assert.Len(t, fx.stores.notes, 2)
}

func TestAddReviewRequiresEnrollment(t *testing.T) {
	fx := newReviewFixture(t)
	stranger := authctx.Viewer{ID: bson.NewObjectID().Hex(), Name: "Eve"}

	_, err := fx.svc.AddReview(context.Background(), stranger, fx.courseID.Hex(), dto.AddReviewReq{
		Review: "Sneaky review.",
		Rating: 1,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))

	// no review document created
	assert.Empty(t, fx.stores.reviews)
	assert.Zero(t, fx.stores.writes)
}

func TestAddReviewRatingOutOfRange(t *testing.T) {
	fx := newReviewFixture(t)
	viewer := enrolledViewer(fx.courseID)

	_, err := fx.svc.AddReview(context.Background(), viewer, fx.courseID.Hex(), dto.AddReviewReq{
		Review: "Eleven stars!",
		Rating: 11,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))
	assert.Empty(t, fx.stores.reviews)
}

func TestAddReviewUnknownCourse(t *testing.T) {
	fx := newReviewFixture(t)
	ghost := bson.NewObjectID()
	viewer := enrolledViewer(ghost)

	_, err := fx.svc.AddReview(context.Background(), viewer, ghost.Hex(), dto.AddReviewReq{
		Review: "Reviewing a ghost.",
		Rating: 4,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestAddReviewAllowsRepeatSubmissions(t *testing.T) {
	fx := newReviewFixture(t)
	viewer := enrolledViewer(fx.courseID)
	req := dto.AddReviewReq{Review: "Same text.", Rating: 4}

	_, err := fx.svc.AddReview(context.Background(), viewer, fx.courseID.Hex(), req)
	require.NoError(t, err)
	_, err = fx.svc.AddReview(context.Background(), viewer, fx.courseID.Hex(), req)
	require.NoError(t, err)

	// no dedup on (user, course); both reviews count
	assert.Len(t, fx.stores.reviews, 2)
}

func (fx *reviewFixture) addReviewDirect(t *testing.T, courseID bson.ObjectID) bson.ObjectID {
	t.Helper()
	r := &model.Review{
		UserID:   bson.NewObjectID(),
		CourseID: courseID,
		Rating:   4,
		Comment:  "Solid course.",
	}
	id, err := memReviews{fx.stores}.Insert(context.Background(), r)
	require.NoError(t, err)
	return id
}

func TestAddReplyToReviewLinksNewComment(t *testing.T) {
	fx := newReviewFixture(t)
	reviewID := fx.addReviewDirect(t, fx.courseID)
	viewer := enrolledViewer(fx.courseID)

	updated, err := fx.svc.AddReplyToReview(context.Background(), viewer, dto.AddReviewReplyReq{
		Comment:  "Thanks for the kind words.",
		CourseID: fx.courseID.Hex(),
		ReviewID: reviewID.Hex(),
	})
	require.NoError(t, err)
	require.Len(t, updated.CommentReplies, 1)

	// the linked id belongs to a freshly created reply comment, not to
	// the review itself
	replyID := updated.CommentReplies[0]
	assert.NotEqual(t, reviewID, replyID)
	reply, ok := fx.stores.comments[replyID]
	require.True(t, ok)
	assert.Equal(t, "Thanks for the kind words.", reply.Answer)
}

func TestAddReplyToReviewWrongCourse(t *testing.T) {
	fx := newReviewFixture(t)
	otherCourse := bson.NewObjectID()
	fx.stores.courses[otherCourse] = &model.Course{ID: otherCourse, Name: "Another Course"}
	reviewID := fx.addReviewDirect(t, otherCourse)
	viewer := enrolledViewer(fx.courseID)

	_, err := fx.svc.AddReplyToReview(context.Background(), viewer, dto.AddReviewReplyReq{
		Comment:  "Wrong address.",
		CourseID: fx.courseID.Hex(),
		ReviewID: reviewID.Hex(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))
}

func TestAddReplyToReviewUnknownReview(t *testing.T) {
	fx := newReviewFixture(t)
	viewer := enrolledViewer(fx.courseID)

	_, err := fx.svc.AddReplyToReview(context.Background(), viewer, dto.AddReviewReplyReq{
		Comment:  "Replying to nothing.",
		CourseID: fx.courseID.Hex(),
		ReviewID: bson.NewObjectID().Hex(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestListReviewsResolvesAuthors(t *testing.T) {
	fx := newReviewFixture(t)

	authorID := bson.NewObjectID()
	fx.stores.users[authorID] = &model.UserProfile{
		ID:     authorID,
		Name:   "Grace",
		Avatar: model.Thumbnail{URL: "https://cdn.example.com/grace.png"},
	}
	r := &model.Review{UserID: authorID, CourseID: fx.courseID, Rating: 5, Comment: "Great."}
	_, err := memReviews{fx.stores}.Insert(context.Background(), r)
	require.NoError(t, err)

	reviews, err := fx.svc.ListReviews(context.Background(), fx.courseID.Hex(), 0)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Grace", reviews[0].Author.Name)
	assert.Equal(t, "https://cdn.example.com/grace.png", reviews[0].Author.Avatar.URL)
}

func TestListReviewsHonorsLimit(t *testing.T) {
	fx := newReviewFixture(t)
	for i := 0; i < 3; i++ {
		fx.addReviewDirect(t, fx.courseID)
	}

	reviews, err := fx.svc.ListReviews(context.Background(), fx.courseID.Hex(), 2)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	// non-positive falls back to the default page size
	reviews, err = fx.svc.ListReviews(context.Background(), fx.courseID.Hex(), -1)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
}

func TestListReviewsUnknownCourse(t *testing.T) {
	fx := newReviewFixture(t)

	_, err := fx.svc.ListReviews(context.Background(), bson.NewObjectID().Hex(), 0)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	_, err = fx.svc.ListReviews(context.Background(), "garbage", 0)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))
}
