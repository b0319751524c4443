package domain

import "time"

// Enrollment records a student taking a course. StudentID always comes
// from the authenticated identity, never the request body: students can
// only enroll themselves.
type Enrollment struct {
	ID        string
	StudentID string
	CourseID  int64
	CreatedAt time.Time
}
