package service

import (
	"context"
	"log/slog"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
	"github.com/opencampus/edutrack/internal/edutrack/store"
	"github.com/opencampus/edutrack/pkg/idx"
	"github.com/opencampus/edutrack/pkg/slogx"
)

type EnrollmentService struct {
	Store store.Store
}

// Enroll records the authenticated student taking a course. The student id
// always comes from the caller's token, never the request body.
func (s *EnrollmentService) Enroll(
	ctx context.Context,
	studentID string,
	courseID int64,
) (domain.Enrollment, error) {
	enrollment := domain.Enrollment{
		ID:        idx.New().String(),
		StudentID: studentID,
		CourseID:  courseID,
	}

	if err := s.Store.Enrollments().CreateEnrollment(ctx, enrollment); err != nil {
		return domain.Enrollment{}, err
	}

	slogx.FromContext(ctx).Info("student enrolled",
		slog.String("enrollment_id", enrollment.ID),
		slog.Int64("course_id", courseID),
	)
	return enrollment, nil
}

// ListForStudent returns the student's own enrollments.
func (s *EnrollmentService) ListForStudent(
	ctx context.Context,
	studentID string,
) ([]domain.Enrollment, error) {
	return s.Store.Enrollments().ListEnrollmentsByStudent(ctx, studentID)
}
