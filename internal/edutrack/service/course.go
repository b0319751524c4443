package service

import (
	"context"
	"log/slog"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
	"github.com/opencampus/edutrack/internal/edutrack/store"
	"github.com/opencampus/edutrack/pkg/slogx"
)

type CourseService struct {
	Store store.Store
}

// Create adds a course to the catalog.
func (s *CourseService) Create(ctx context.Context, code, title string) (domain.Course, error) {
	course, err := s.Store.Courses().CreateCourse(ctx, domain.Course{Code: code, Title: title})
	if err != nil {
		return domain.Course{}, err
	}

	slogx.FromContext(ctx).Info("course created",
		slog.Int64("course_id", course.ID),
		slog.String("code", course.Code),
	)
	return course, nil
}

// List returns the full course catalog.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.Store.Courses().ListCourses(ctx)
}
