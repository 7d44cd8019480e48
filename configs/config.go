package configs

import "time"

const (
	DefaultLimitReviews = int64(20)
	MaxLimitReviews     = int64(100)

	// CourseCacheTTL matches the review/course read paths: entries are
	// refreshed on write, so a long TTL is fine.
	CourseCacheTTL = 7 * 24 * time.Hour

	AllCoursesCacheKey = "all-courses"
)

// CourseCacheKey is the per-course cache key for single-course reads.
func CourseCacheKey(courseID string) string {
	return "course:" + courseID
}
