package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
	"github.com/opencampus/edutrack/internal/edutrack/notify"
	"github.com/opencampus/edutrack/internal/edutrack/store"
	"github.com/opencampus/edutrack/pkg/idx"
	"github.com/opencampus/edutrack/pkg/slogx"
)

// ErrEnrollmentNotFound is returned when a grade targets an enrollment
// that does not exist.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

type GradeService struct {
	Store    store.Store
	Notifier notify.Notifier
}

// RecordGrade verifies the enrollment exists and inserts the grade in one
// transaction, stamped with the faculty member who entered it. On success
// the student is notified by mail in the background; notification
// failures are logged and swallowed, they never affect the caller.
func (s *GradeService) RecordGrade(
	ctx context.Context,
	enteredBy, enrollmentID, gradeValue string,
) (domain.Grade, error) {
	log := slogx.FromContext(ctx)

	grade := domain.Grade{
		ID:           idx.New().String(),
		EnrollmentID: enrollmentID,
		Grade:        gradeValue,
		EnteredBy:    enteredBy,
	}

	var notice notify.GradeNotice

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		enrollment, err := tx.Enrollments().GetEnrollmentByID(ctx, enrollmentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrEnrollmentNotFound
			}
			return err
		}

		student, err := tx.Users().GetUserByID(ctx, enrollment.StudentID)
		if err != nil {
			return err
		}

		notice = notify.GradeNotice{
			StudentEmail: student.Email,
			StudentName:  student.Name,
			CourseID:     enrollment.CourseID,
			Grade:        gradeValue,
		}

		return tx.Grades().CreateGrade(ctx, grade)
	})
	if err != nil {
		return domain.Grade{}, err
	}

	log.Info("grade recorded",
		slog.String("grade_id", grade.ID),
		slog.String("enrollment_id", enrollmentID),
		slog.String("entered_by", enteredBy),
	)

	if s.Notifier != nil {
		// Fire-and-forget: the HTTP response never waits on mail.
		go func(n notify.GradeNotice) {
			bg := context.WithoutCancel(ctx)
			if err := s.Notifier.GradePosted(bg, n); err != nil {
				log.Warn("grade notification failed", slog.Any("error", err))
			}
		}(notice)
	}

	return grade, nil
}
