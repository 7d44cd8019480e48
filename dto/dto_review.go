package dto

type AddReviewReq struct {
	Review string  `json:"review" validate:"required,min=1,max=4000"`
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`
}

type AddReviewReplyReq struct {
	Comment  string `json:"comment"  validate:"required,min=1,max=2000"`
	CourseID string `json:"courseId" validate:"required"`
	ReviewID string `json:"reviewId" validate:"required"`
}
