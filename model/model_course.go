package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Thumbnail struct {
	PublicID string `json:"public_id" bson:"public_id,omitempty"`
	URL      string `json:"url"       bson:"url,omitempty"`
}

type TitledItem struct {
	Title string `json:"title" bson:"title"`
}

type Course struct {
	ID             bson.ObjectID `json:"id"                       bson:"_id,omitempty"`
	Name           string        `json:"name"                     bson:"name"`
	Description    string        `json:"description"              bson:"description"`
	Categories     string        `json:"categories"               bson:"categories"`
	Price          float64       `json:"price"                    bson:"price"`
	EstimatedPrice float64       `json:"estimatedPrice,omitempty" bson:"estimated_price,omitempty"`
	CourseDataRef  bson.ObjectID `json:"courseDataRef,omitempty"  bson:"course_data_ref,omitempty"`
	Thumbnail      Thumbnail     `json:"thumbnail"                bson:"thumbnail,omitempty"`
	Tags           string        `json:"tags"                     bson:"tags"`
	Level          string        `json:"level"                    bson:"level"`
	DemoURL        string        `json:"demoUrl"                  bson:"demo_url"`
	Benefits       []TitledItem  `json:"benefits"                 bson:"benefits,omitempty"`
	Prerequisites  []TitledItem  `json:"prerequisites"            bson:"prerequisites,omitempty"`
	// Ratings is derived: the mean of all review ratings for this course,
	// recomputed after every review insert.
	Ratings   float64   `json:"ratings"   bson:"ratings"`
	Purchased int       `json:"purchased" bson:"purchased"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// CoursePatch carries the updatable course fields; nil means "leave as is".
type CoursePatch struct {
	Name           *string       `json:"name"           bson:"name,omitempty"`
	Description    *string       `json:"description"    bson:"description,omitempty"`
	Categories     *string       `json:"categories"     bson:"categories,omitempty"`
	Price          *float64      `json:"price"          bson:"price,omitempty"`
	EstimatedPrice *float64      `json:"estimatedPrice" bson:"estimated_price,omitempty"`
	Thumbnail      *Thumbnail    `json:"thumbnail"      bson:"thumbnail,omitempty"`
	Tags           *string       `json:"tags"           bson:"tags,omitempty"`
	Level          *string       `json:"level"          bson:"level,omitempty"`
	DemoURL        *string       `json:"demoUrl"        bson:"demo_url,omitempty"`
	Benefits       *[]TitledItem `json:"benefits"       bson:"benefits,omitempty"`
	Prerequisites  *[]TitledItem `json:"prerequisites"  bson:"prerequisites,omitempty"`
}
