package domain

import "time"

type Course struct {
	ID        int64
	Code      string // e.g. "CS101"
	Title     string
	CreatedAt time.Time
}
