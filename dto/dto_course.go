package dto

import "course_workspace/model"

type CreateCourseReq struct {
	Name           string             `json:"name"           validate:"required"`
	Description    string             `json:"description"    validate:"required"`
	Categories     string             `json:"categories"     validate:"required"`
	Price          float64            `json:"price"          validate:"gte=0"`
	EstimatedPrice float64            `json:"estimatedPrice" validate:"gte=0"`
	Thumbnail      model.Thumbnail    `json:"thumbnail"`
	Tags           string             `json:"tags"           validate:"required"`
	Level          string             `json:"level"          validate:"required"`
	DemoURL        string             `json:"demoUrl"        validate:"required"`
	Benefits       []model.TitledItem `json:"benefits"`
	Prerequisites  []model.TitledItem `json:"prerequisites"`
	CourseData     CourseDataReq      `json:"courseData"     validate:"required"`
}

type CourseDataReq struct {
	Title        string          `json:"title"        validate:"required"`
	Description  string          `json:"description"  validate:"required"`
	VideoURL     string          `json:"videoUrl"     validate:"required"`
	VideoSection string          `json:"videoSection"`
	VideoLength  float64         `json:"videoLength"`
	VideoPlayer  string          `json:"videoPlayer"`
	Links        []model.Link    `json:"links"`
	Suggestion   string          `json:"suggestion"`
	Thumbnail    model.Thumbnail `json:"videoThumbnail"`
}
