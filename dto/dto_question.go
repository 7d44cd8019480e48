package dto

type AddQuestionReq struct {
	Question  string `json:"question"  validate:"required,min=1,max=2000"`
	CourseID  string `json:"courseId"  validate:"required"`
	ContentID string `json:"contentId" validate:"required"`
}

type AddAnswerReq struct {
	Answer     string `json:"answer"     validate:"required,min=1,max=2000"`
	CourseID   string `json:"courseId"   validate:"required"`
	ContentID  string `json:"contentId"  validate:"required"`
	QuestionID string `json:"questionId" validate:"required"`
}
