// Package authctx exposes the authenticated viewer placed in request Locals
// by the JWT middleware.
package authctx

import "github.com/gofiber/fiber/v2"

const localsKey = "viewer"

// Viewer is the authenticated-user context: identity plus the enrollment
// list maintained by the account service.
type Viewer struct {
	ID      string   // hex ObjectID
	Name    string
	Email   string
	Courses []string // enrolled course ids (hex)
}

// EnrolledIn reports whether courseID appears in the viewer's course list.
func (v Viewer) EnrolledIn(courseID string) bool {
	for _, c := range v.Courses {
		if c == courseID {
			return true
		}
	}
	return false
}

func Set(c *fiber.Ctx, v Viewer) {
	c.Locals(localsKey, v)
}

func FromLocals(c *fiber.Ctx) (Viewer, bool) {
	v, ok := c.Locals(localsKey).(Viewer)
	return v, ok && v.ID != ""
}
