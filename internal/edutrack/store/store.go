package store

import (
	"context"
	"errors"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Courses() Courses
	Enrollments() Enrollments
	Grades() Grades

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)
}

type Courses interface {
	// CreateCourse inserts a course and returns it with the store-assigned id.
	CreateCourse(ctx context.Context, c domain.Course) (domain.Course, error)

	// GetCourseByID fetches a single course.
	GetCourseByID(ctx context.Context, id int64) (domain.Course, error)

	// ListCourses returns the catalog ordered by id.
	ListCourses(ctx context.Context) ([]domain.Course, error)
}

type Enrollments interface {
	// CreateEnrollment inserts a new enrollment (id is a ULID).
	CreateEnrollment(ctx context.Context, e domain.Enrollment) error

	// GetEnrollmentByID fetches a single enrollment.
	GetEnrollmentByID(ctx context.Context, id string) (domain.Enrollment, error)

	// ListEnrollmentsByStudent returns a student's enrollments, newest first.
	ListEnrollmentsByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error)
}

type Grades interface {
	// CreateGrade inserts a new grade record (id is a ULID).
	CreateGrade(ctx context.Context, g domain.Grade) error

	// ListGradesByEnrollment returns the grades recorded for an enrollment.
	ListGradesByEnrollment(ctx context.Context, enrollmentID string) ([]domain.Grade, error)
}
