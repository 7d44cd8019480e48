package services

import (
	"context"
	"encoding/json"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"course_workspace/configs"
	"course_workspace/dto"
	"course_workspace/internal/apperr"
	"course_workspace/internal/authctx"
	"course_workspace/internal/store"
	"course_workspace/model"
)

// CourseService covers course CRUD and the cached read paths. Cache policy
// is plain: memoize by key on read, write through on edit, delete on any
// other write. A cache outage degrades reads to the store instead of
// failing them.
type CourseService struct {
	courses  store.CourseStore
	contents store.ContentStore
	cache    store.Cache
	log      *zap.Logger
}

func NewCourseService(
	courses store.CourseStore,
	contents store.ContentStore,
	cache store.Cache,
	log *zap.Logger,
) *CourseService {
	return &CourseService{courses: courses, contents: contents, cache: cache, log: log}
}

// Create persists the content aggregate first, then the course pointing at
// it, and invalidates the listing cache. The thumbnail arrives already
// uploaded; the media host is an external collaborator.
func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseReq) (*model.Course, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	content := &model.CourseData{
		Title:          req.CourseData.Title,
		Description:    req.CourseData.Description,
		VideoURL:       req.CourseData.VideoURL,
		VideoThumbnail: req.CourseData.Thumbnail,
		VideoSection:   req.CourseData.VideoSection,
		VideoLength:    req.CourseData.VideoLength,
		VideoPlayer:    req.CourseData.VideoPlayer,
		Links:          req.CourseData.Links,
		Suggestion:     req.CourseData.Suggestion,
		Questions:      []bson.ObjectID{},
	}
	contentID, err := s.contents.Insert(ctx, content)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "could not save course content", err)
	}

	course := &model.Course{
		Name:           req.Name,
		Description:    req.Description,
		Categories:     req.Categories,
		Price:          req.Price,
		EstimatedPrice: req.EstimatedPrice,
		CourseDataRef:  contentID,
		Thumbnail:      req.Thumbnail,
		Tags:           req.Tags,
		Level:          req.Level,
		DemoURL:        req.DemoURL,
		Benefits:       req.Benefits,
		Prerequisites:  req.Prerequisites,
	}
	if _, err := s.courses.Insert(ctx, course); err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "could not save course", err)
	}

	if err := s.cache.Del(ctx, configs.AllCoursesCacheKey); err != nil {
		s.log.Warn("listing cache invalidation failed", zap.Error(err))
	}
	return course, nil
}

// Update applies a partial edit and writes the fresh document through to
// the per-course cache key.
func (s *CourseService) Update(ctx context.Context, courseIDHex string, patch model.CoursePatch) (*model.Course, error) {
	courseID, err := bson.ObjectIDFromHex(courseIDHex)
	if err != nil {
		return nil, apperr.Invalid("invalid course id")
	}

	course, err := s.courses.Patch(ctx, courseID, patch)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "could not update course", err)
	}
	if course == nil {
		return nil, apperr.NotFoundf("course not found")
	}

	if raw, err := json.Marshal(course); err == nil {
		if err := s.cache.Set(ctx, configs.CourseCacheKey(courseIDHex), raw, configs.CourseCacheTTL); err != nil {
			s.log.Warn("course cache write failed", zap.Error(err))
		}
	}
	return course, nil
}

// Get serves the public single-course view, cache first.
func (s *CourseService) Get(ctx context.Context, courseIDHex string) (*model.CourseAggregate, error) {
	courseID, err := bson.ObjectIDFromHex(courseIDHex)
	if err != nil {
		return nil, apperr.Invalid("invalid course id")
	}

	key := configs.CourseCacheKey(courseIDHex)
	if raw, hit, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("course cache read failed", zap.Error(err))
	} else if hit {
		var agg model.CourseAggregate
		if err := json.Unmarshal(raw, &agg); err == nil {
			return &agg, nil
		}
		s.log.Warn("course cache entry corrupt", zap.String("key", key))
	}

	agg, err := s.courses.WithContent(ctx, courseID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if agg == nil {
		return nil, apperr.NotFoundf("course not found")
	}

	if raw, err := json.Marshal(agg); err == nil {
		if err := s.cache.Set(ctx, key, raw, configs.CourseCacheTTL); err != nil {
			s.log.Warn("course cache write failed", zap.Error(err))
		}
	}
	return agg, nil
}

// List serves the public listing, cache first.
func (s *CourseService) List(ctx context.Context) (*model.CourseList, error) {
	if raw, hit, err := s.cache.Get(ctx, configs.AllCoursesCacheKey); err != nil {
		s.log.Warn("listing cache read failed", zap.Error(err))
	} else if hit {
		var list model.CourseList
		if err := json.Unmarshal(raw, &list); err == nil {
			return &list, nil
		}
		s.log.Warn("listing cache entry corrupt")
	}

	list, err := s.courses.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}

	if raw, err := json.Marshal(list); err == nil {
		if err := s.cache.Set(ctx, configs.AllCoursesCacheKey, raw, configs.CourseCacheTTL); err != nil {
			s.log.Warn("listing cache write failed", zap.Error(err))
		}
	}
	return list, nil
}

// ListAdmin bypasses the cache and returns every course newest first.
func (s *CourseService) ListAdmin(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courses.ListNewestFirst(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// Content returns the full content aggregate for an enrolled viewer.
func (s *CourseService) Content(ctx context.Context, viewer authctx.Viewer, courseIDHex string) (*model.CourseData, error) {
	courseID, err := bson.ObjectIDFromHex(courseIDHex)
	if err != nil {
		return nil, apperr.Invalid("invalid course id")
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

	content, err := s.contents.FindByID(ctx, course.CourseDataRef)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if content == nil {
		return nil, apperr.NotFoundf("content not found")
	}
	return content, nil
}

// Delete removes the course document and its cache keys. Annotations and
// content referencing the course are left in place; nothing cascades.
func (s *CourseService) Delete(ctx context.Context, courseIDHex string) error {
	courseID, err := bson.ObjectIDFromHex(courseIDHex)
	if err != nil {
		return apperr.Invalid("invalid course id")
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if course == nil {
		return apperr.NotFoundf("course not found")
	}

	if err := s.courses.Delete(ctx, courseID); err != nil {
		return apperr.Wrap(apperr.Dependency, "could not delete course", err)
	}

	if err := s.cache.Del(ctx, configs.CourseCacheKey(courseIDHex), configs.AllCoursesCacheKey); err != nil {
		s.log.Warn("course cache invalidation failed", zap.Error(err))
	}
	return nil
}
