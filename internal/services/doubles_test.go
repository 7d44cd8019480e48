package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"course_workspace/internal/mailer"
	"course_workspace/model"
)

// memStores is an in-memory stand-in for every store interface, so the
// workflows can be exercised without a live cluster. Write operations bump
// a counter so tests can assert that a rejected request touched nothing.
type memStores struct {
	courses  map[bson.ObjectID]*model.Course
	contents map[bson.ObjectID]*model.CourseData
	comments map[bson.ObjectID]*model.Comment
	reviews  map[bson.ObjectID]*model.Review
	users    map[bson.ObjectID]*model.UserProfile
	notes    []*model.Notification

	writes int

	appendQuestionErr error
}

func newMemStores() *memStores {
	return &memStores{
		courses:  map[bson.ObjectID]*model.Course{},
		contents: map[bson.ObjectID]*model.CourseData{},
		comments: map[bson.ObjectID]*model.Comment{},
		reviews:  map[bson.ObjectID]*model.Review{},
		users:    map[bson.ObjectID]*model.UserProfile{},
	}
}

// --- CourseStore ---

func (m *memStores) Insert(_ context.Context, course *model.Course) (bson.ObjectID, error) {
	m.writes++
	course.ID = bson.NewObjectID()
	course.CreatedAt = time.Now().UTC()
	m.courses[course.ID] = course
	return course.ID, nil
}

func (m *memStores) FindByID(_ context.Context, id bson.ObjectID) (*model.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memStores) Patch(_ context.Context, id bson.ObjectID, patch model.CoursePatch) (*model.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, nil
	}
	m.writes++
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Price != nil {
		c.Price = *patch.Price
	}
	cp := *c
	return &cp, nil
}

func (m *memStores) SetRatings(_ context.Context, id bson.ObjectID, ratings float64) error {
	c, ok := m.courses[id]
	if !ok {
		return errors.New("course not found")
	}
	m.writes++
	c.Ratings = ratings
	return nil
}

func (m *memStores) Aggregate(_ context.Context, id bson.ObjectID) (*model.CourseAggregate, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, nil
	}
	agg := &model.CourseAggregate{Course: *c}
	var sum float64
	for _, r := range m.reviews {
		if r.CourseID == id {
			agg.TotalReviews++
			sum += r.Rating
		}
	}
	if agg.TotalReviews > 0 {
		agg.AvgRating = sum / float64(agg.TotalReviews)
	}
	return agg, nil
}

func (m *memStores) WithContent(ctx context.Context, id bson.ObjectID) (*model.CourseAggregate, error) {
	return m.Aggregate(ctx, id)
}

func (m *memStores) List(_ context.Context) (*model.CourseList, error) {
	list := &model.CourseList{Courses: []model.Course{}}
	for _, c := range m.courses {
		list.Courses = append(list.Courses, *c)
	}
	list.Total = int64(len(list.Courses))
	return list, nil
}

func (m *memStores) ListNewestFirst(_ context.Context) ([]model.Course, error) {
	list, _ := m.List(context.Background())
	sort.Slice(list.Courses, func(i, j int) bool {
		return list.Courses[i].CreatedAt.After(list.Courses[j].CreatedAt)
	})
	return list.Courses, nil
}

func (m *memStores) Delete(_ context.Context, id bson.ObjectID) error {
	m.writes++
	delete(m.courses, id)
	return nil
}

// --- ContentStore (method names avoid clashing with CourseStore) ---

type memContents struct{ m *memStores }

func (s memContents) Insert(_ context.Context, content *model.CourseData) (bson.ObjectID, error) {
	s.m.writes++
	content.ID = bson.NewObjectID()
	if content.Questions == nil {
		content.Questions = []bson.ObjectID{}
	}
	s.m.contents[content.ID] = content
	return content.ID, nil
}

func (s memContents) FindByID(_ context.Context, id bson.ObjectID) (*model.CourseData, error) {
	c, ok := s.m.contents[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s memContents) AppendQuestion(_ context.Context, contentID, commentID bson.ObjectID) error {
	if s.m.appendQuestionErr != nil {
		return s.m.appendQuestionErr
	}
	c, ok := s.m.contents[contentID]
	if !ok {
		return errors.New("content not found")
	}
	s.m.writes++
	c.Questions = append(c.Questions, commentID)
	return nil
}

func (s memContents) WithQuestions(_ context.Context, contentID bson.ObjectID) (*model.ContentQuestionsView, error) {
	c, ok := s.m.contents[contentID]
	if !ok {
		return nil, nil
	}
	view := &model.ContentQuestionsView{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		VideoURL:    c.VideoURL,
		Questions:   []model.Comment{},
	}
	for _, qid := range c.Questions {
		if q, ok := s.m.comments[qid]; ok {
			view.Questions = append(view.Questions, *q)
		}
	}
	return view, nil
}

// --- CommentStore ---

type memComments struct{ m *memStores }

func (s memComments) Insert(_ context.Context, comment *model.Comment) (bson.ObjectID, error) {
	s.m.writes++
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = time.Now().UTC()
	if comment.Question != "" && comment.QuestionReplies == nil {
		comment.QuestionReplies = []bson.ObjectID{}
	}
	s.m.comments[comment.ID] = comment
	return comment.ID, nil
}

func (s memComments) FindByID(_ context.Context, id bson.ObjectID) (*model.Comment, error) {
	c, ok := s.m.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s memComments) AppendReply(_ context.Context, questionID, replyID bson.ObjectID) error {
	q, ok := s.m.comments[questionID]
	if !ok {
		return errors.New("question not found")
	}
	s.m.writes++
	q.QuestionReplies = append(q.QuestionReplies, replyID)
	return nil
}

func (s memComments) Thread(_ context.Context, questionID bson.ObjectID) (*model.QuestionThread, error) {
	q, ok := s.m.comments[questionID]
	if !ok {
		return nil, nil
	}
	thread := &model.QuestionThread{
		ID:       q.ID,
		UserID:   q.UserID,
		Question: q.Question,
		Replies:  []model.Comment{},
	}
	for _, rid := range q.QuestionReplies {
		r, ok := s.m.comments[rid]
		if !ok {
			continue
		}
		thread.Replies = append(thread.Replies, *r)
		if u, ok := s.m.users[r.UserID]; ok {
			thread.ReplyAuthors = append(thread.ReplyAuthors, *u)
		}
	}
	return thread, nil
}

// --- ReviewStore ---

type memReviews struct{ m *memStores }

func (s memReviews) Insert(_ context.Context, review *model.Review) (bson.ObjectID, error) {
	s.m.writes++
	review.ID = bson.NewObjectID()
	review.CreatedAt = time.Now().UTC()
	if review.CommentReplies == nil {
		review.CommentReplies = []bson.ObjectID{}
	}
	s.m.reviews[review.ID] = review
	return review.ID, nil
}

func (s memReviews) FindByID(_ context.Context, id bson.ObjectID) (*model.Review, error) {
	r, ok := s.m.reviews[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (s memReviews) AppendReply(_ context.Context, reviewID, commentID bson.ObjectID) error {
	r, ok := s.m.reviews[reviewID]
	if !ok {
		return errors.New("review not found")
	}
	s.m.writes++
	r.CommentReplies = append(r.CommentReplies, commentID)
	return nil
}

func (s memReviews) ListByCourse(_ context.Context, courseID bson.ObjectID, limit int64) ([]model.ReviewWithAuthor, error) {
	out := []model.ReviewWithAuthor{}
	for _, r := range s.m.reviews {
		if r.CourseID != courseID {
			continue
		}
		item := model.ReviewWithAuthor{Review: *r}
		if u, ok := s.m.users[r.UserID]; ok {
			item.Author = *u
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- NotificationStore / UserStore ---

type memNotes struct{ m *memStores }

func (s memNotes) Insert(_ context.Context, note *model.Notification) error {
	s.m.writes++
	note.ID = bson.NewObjectID()
	s.m.notes = append(s.m.notes, note)
	return nil
}

type memUsers struct{ m *memStores }

func (s memUsers) FindByID(_ context.Context, id bson.ObjectID) (*model.UserProfile, error) {
	u, ok := s.m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// --- Cache ---

type memCache struct {
	entries map[string][]byte
	dels    []string
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	c.entries[key] = val
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
		c.dels = append(c.dels, k)
	}
	return nil
}

// --- Mailer ---

type memMailer struct {
	sent []mailer.Message
	err  error
}

func (m *memMailer) Send(_ context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}
