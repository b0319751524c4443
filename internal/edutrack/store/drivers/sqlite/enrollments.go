package sqlite

import (
	"context"
	"time"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
)

type enrollmentsRepo struct {
	q querier
}

func (r *enrollmentsRepo) CreateEnrollment(ctx context.Context, e domain.Enrollment) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO enrollments (id, student_id, course_id, created_at)
		VALUES (?, ?, ?, ?)`,
		e.ID, e.StudentID, e.CourseID, time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *enrollmentsRepo) GetEnrollmentByID(ctx context.Context, id string) (domain.Enrollment, error) {
	var e domain.Enrollment
	err := r.q.QueryRowContext(ctx, `
		SELECT id, student_id, course_id, created_at
		FROM enrollments WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.StudentID, &e.CourseID, &e.CreatedAt)
	if err != nil {
		return domain.Enrollment{}, mapNotFound(err)
	}
	return e, nil
}

func (r *enrollmentsRepo) ListEnrollmentsByStudent(
	ctx context.Context,
	studentID string,
) ([]domain.Enrollment, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, student_id, course_id, created_at
		FROM enrollments WHERE student_id = ? ORDER BY id DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []domain.Enrollment
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.CreatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
