package domain

import "time"

// Grade is a mark recorded against an enrollment. EnteredBy is the id of
// the faculty member who recorded it, taken from the authenticated
// identity.
type Grade struct {
	ID           string
	EnrollmentID string
	Grade        string
	EnteredBy    string
	CreatedAt    time.Time
}
