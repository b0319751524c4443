package sqlite

import (
	"context"
	"time"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
)

type gradesRepo struct {
	q querier
}

func (r *gradesRepo) CreateGrade(ctx context.Context, g domain.Grade) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO grades (id, enrollment_id, grade, entered_by, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.EnrollmentID, g.Grade, g.EnteredBy, time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *gradesRepo) ListGradesByEnrollment(
	ctx context.Context,
	enrollmentID string,
) ([]domain.Grade, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, enrollment_id, grade, entered_by, created_at
		FROM grades WHERE enrollment_id = ? ORDER BY id`,
		enrollmentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []domain.Grade
	for rows.Next() {
		var g domain.Grade
		if err := rows.Scan(&g.ID, &g.EnrollmentID, &g.Grade, &g.EnteredBy, &g.CreatedAt); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
