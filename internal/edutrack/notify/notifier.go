// Package notify delivers best-effort mail notifications. Delivery is
// fire-and-forget: callers log failures and never surface them to the
// client.
package notify

import "context"

// GradeNotice describes a grade entry worth telling the student about.
type GradeNotice struct {
	StudentEmail string
	StudentName  string
	CourseID     int64
	Grade        string
}

// Notifier sends notifications. Implementations must be safe for
// concurrent use.
type Notifier interface {
	GradePosted(ctx context.Context, n GradeNotice) error
}

// Nop is the Notifier used when no mail transport is configured.
type Nop struct{}

func (Nop) GradePosted(context.Context, GradeNotice) error { return nil }
