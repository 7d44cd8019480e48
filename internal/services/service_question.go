package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"course_workspace/dto"
	"course_workspace/internal/apperr"
	"course_workspace/internal/authctx"
	"course_workspace/internal/mailer"
	"course_workspace/internal/store"
	"course_workspace/model"
)

// QuestionService runs the question/answer workflow: flat comment documents
// linked by id arrays, with the parent's reference list appended on every
// insert. The two writes are separate document saves; a crash between them
// leaves an orphan comment, which is accepted and only logged.
type QuestionService struct {
	courses  store.CourseStore
	contents store.ContentStore
	comments store.CommentStore
	users    store.UserStore
	notes    store.NotificationStore
	mail     mailer.Mailer
	log      *zap.Logger
}

func NewQuestionService(
	courses store.CourseStore,
	contents store.ContentStore,
	comments store.CommentStore,
	users store.UserStore,
	notes store.NotificationStore,
	mail mailer.Mailer,
	log *zap.Logger,
) *QuestionService {
	return &QuestionService{
		courses:  courses,
		contents: contents,
		comments: comments,
		users:    users,
		notes:    notes,
		mail:     mail,
		log:      log,
	}
}

// AddQuestion creates a question comment against a content unit and returns
// the content with its question list fully expanded. Any authenticated user
// may ask; there is no enrollment check on this path.
func (s *QuestionService) AddQuestion(ctx context.Context, viewer authctx.Viewer, req dto.AddQuestionReq) (*model.ContentQuestionsView, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	courseID, err := bson.ObjectIDFromHex(req.CourseID)
	if err != nil {
		return nil, apperr.Invalid("invalid course or content id")
	}
	contentID, err := bson.ObjectIDFromHex(req.ContentID)
	if err != nil {
		return nil, apperr.Invalid("invalid course or content id")
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

	content, err := s.contents.FindByID(ctx, contentID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if content == nil {
		return nil, apperr.NotFoundf("content not found")
	}

	question := &model.Comment{
		UserID:          viewerID,
		Question:        req.Question,
		QuestionReplies: []bson.ObjectID{},
	}
	questionID, err := s.comments.Insert(ctx, question)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "could not save question", err)
	}

	if err := s.contents.AppendQuestion(ctx, contentID, questionID); err != nil {
		// The comment is persisted but unreferenced: a permanent orphan.
		s.log.Warn("orphan question comment",
			zap.String("comment_id", questionID.Hex()),
			zap.String("content_id", contentID.Hex()),
			zap.Error(err))
		return nil, apperr.Wrap(apperr.Dependency, "could not attach question to content", err)
	}

	// The asker is notified about their own question. Intent is unclear
	// (an instructor target would make more sense) so the behavior is kept.
	s.notify(ctx, &model.Notification{
		UserID:  viewerID,
		Title:   "New Question from " + viewer.Name,
		Message: "You have a new question in " + content.Title,
	})

	view, err := s.contents.WithQuestions(ctx, contentID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if view == nil {
		return nil, apperr.NotFoundf("content not found")
	}
	return view, nil
}

// AddAnswer creates an answer comment, links it into the question's reply
// list and notifies the question author: by templated email when someone
// else answers, by in-app notification when they answer themselves.
func (s *QuestionService) AddAnswer(ctx context.Context, viewer authctx.Viewer, req dto.AddAnswerReq) (*model.QuestionThread, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	courseID, err := bson.ObjectIDFromHex(req.CourseID)
	if err != nil {
		return nil, apperr.Invalid("invalid ids provided")
	}
	contentID, err := bson.ObjectIDFromHex(req.ContentID)
	if err != nil {
		return nil, apperr.Invalid("invalid ids provided")
	}
	questionID, err := bson.ObjectIDFromHex(req.QuestionID)
	if err != nil {
		return nil, apperr.Invalid("invalid ids provided")
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

	content, err := s.contents.FindByID(ctx, contentID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if content == nil {
		return nil, apperr.NotFoundf("content not found")
	}

	question, err := s.comments.FindByID(ctx, questionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if question == nil {
		return nil, apperr.NotFoundf("question not found")
	}

	answer := &model.Comment{
		UserID: viewerID,
		Answer: req.Answer,
	}
	answerID, err := s.comments.Insert(ctx, answer)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "could not save answer", err)
	}

	if err := s.comments.AppendReply(ctx, questionID, answerID); err != nil {
		s.log.Warn("orphan answer comment",
			zap.String("comment_id", answerID.Hex()),
			zap.String("question_id", questionID.Hex()),
			zap.Error(err))
		return nil, apperr.Wrap(apperr.Dependency, "could not attach answer to question", err)
	}

	if viewerID != question.UserID {
		if err := s.mailQuestionAuthor(ctx, question.UserID, content.Title); err != nil {
			return nil, err
		}
	} else {
		s.notify(ctx, &model.Notification{
			UserID:  viewerID,
			Title:   "Answer to Your Question",
			Message: viewer.Name + " replied to your question in " + content.Title,
		})
	}

	thread, err := s.comments.Thread(ctx, questionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "data store failure", err)
	}
	if thread == nil {
		return nil, apperr.NotFoundf("question not found")
	}
	return thread, nil
}

// mailQuestionAuthor resolves the author's profile and sends the templated
// reply mail. Without a resolvable profile the template cannot be rendered
// and the operation fails as a dependency error.
func (s *QuestionService) mailQuestionAuthor(ctx context.Context, authorID bson.ObjectID, contentTitle string) error {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return apperr.Wrap(apperr.Dependency, "question author profile unavailable", err)
	}
	if author == nil || author.Email == "" {
		return apperr.New(apperr.Dependency, "question author profile unavailable")
	}

	html, err := mailer.Render("question-reply", struct {
		Name  string
		Title string
	}{Name: author.Name, Title: contentTitle})
	if err != nil {
		return apperr.Wrap(apperr.Dependency, "could not render reply mail", err)
	}

	err = s.mail.Send(ctx, mailer.Message{
		ToName:  author.Name,
		ToEmail: author.Email,
		Subject: "New Answer to Your Question",
		HTML:    html,
	})
	if err != nil {
		return apperr.Wrap(apperr.Dependency, "could not send reply mail", err)
	}
	return nil
}

// notify writes an in-app notification; delivery is fire-and-forget, so a
// failed write is logged and the request proceeds.
func (s *QuestionService) notify(ctx context.Context, note *model.Notification) {
	if err := s.notes.Insert(ctx, note); err != nil {
		s.log.Warn("notification write failed",
			zap.String("title", note.Title),
			zap.Error(err))
	}
}
