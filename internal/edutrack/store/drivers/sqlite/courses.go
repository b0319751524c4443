package sqlite

import (
	"context"
	"time"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
)

type coursesRepo struct {
	q querier
}

func (r *coursesRepo) CreateCourse(ctx context.Context, c domain.Course) (domain.Course, error) {
	c.CreatedAt = time.Now().UTC()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO courses (code, title, created_at) VALUES (?, ?, ?)`,
		c.Code, c.Title, c.CreatedAt,
	)
	if err != nil {
		return domain.Course{}, mapConstraint(err)
	}

	c.ID, err = res.LastInsertId()
	if err != nil {
		return domain.Course{}, err
	}
	return c, nil
}

func (r *coursesRepo) GetCourseByID(ctx context.Context, id int64) (domain.Course, error) {
	var c domain.Course
	err := r.q.QueryRowContext(ctx, `
		SELECT id, code, title, created_at FROM courses WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.Code, &c.Title, &c.CreatedAt)
	if err != nil {
		return domain.Course{}, mapNotFound(err)
	}
	return c, nil
}

func (r *coursesRepo) ListCourses(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, code, title, created_at FROM courses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Title, &c.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
