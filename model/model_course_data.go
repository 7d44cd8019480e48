package model

import "go.mongodb.org/mongo-driver/v2/bson"

type Link struct {
	Title string `json:"title" bson:"title"`
	URL   string `json:"url"   bson:"url"`
}

// CourseData is the content aggregate a Course points at via CourseDataRef.
// Questions holds comment ids, appended in arrival order; nothing removes
// entries from it.
type CourseData struct {
	ID             bson.ObjectID   `json:"id"             bson:"_id,omitempty"`
	Title          string          `json:"title"          bson:"title"`
	Description    string          `json:"description"    bson:"description"`
	VideoURL       string          `json:"videoUrl"       bson:"video_url"`
	VideoThumbnail Thumbnail       `json:"videoThumbnail" bson:"video_thumbnail,omitempty"`
	VideoSection   string          `json:"videoSection"   bson:"video_section,omitempty"`
	VideoLength    float64         `json:"videoLength"    bson:"video_length,omitempty"`
	VideoPlayer    string          `json:"videoPlayer"    bson:"video_player,omitempty"`
	Links          []Link          `json:"links"          bson:"links,omitempty"`
	Suggestion     string          `json:"suggestion"     bson:"suggestion,omitempty"`
	Questions      []bson.ObjectID `json:"questions"      bson:"questions"`
}
