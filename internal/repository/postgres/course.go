package postgres

import (
	"context"

	"github.com/devalimotahari/uni-schedule-form/internal/domain"
)

func (s *Storage) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	const query = `
		SELECT id, name, created_at
        FROM courses
        ORDER BY name;
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	return courses, nil
}
