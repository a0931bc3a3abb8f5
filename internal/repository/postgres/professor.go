package postgres

import (
	"context"
	"encoding/json"

	"github.com/devalimotahari/uni-schedule-form/internal/domain"
	"github.com/devalimotahari/uni-schedule-form/internal/utils"
)

func (s *Storage) CreateProfessor(ctx context.Context, professor *domain.Professor) error {
	const query = `
        INSERT INTO professors (id, name, national_code, mobile, prefer_days, days, courses)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `

	daysJSON, err := json.Marshal(professor.Days)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, query,
		professor.ID,
		professor.Name,
		professor.NationalCode,
		professor.Mobile,
		dayCodesToInts(professor.PreferDays),
		string(daysJSON),
		professor.Courses,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsInserted
	}

	return nil
}

func (s *Storage) ListProfessors(ctx context.Context) ([]domain.Professor, error) {
	const query = `
        SELECT id, name, national_code, mobile, prefer_days, days, courses, created_at
        FROM professors;
    `

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var professors []domain.Professor
	for rows.Next() {
		var p domain.Professor
		var preferDays []int32
		var daysJSON string

		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.NationalCode,
			&p.Mobile,
			&preferDays,
			&daysJSON,
			&p.Courses,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		p.PreferDays = intsToDayCodes(preferDays)
		if err := json.Unmarshal([]byte(daysJSON), &p.Days); err != nil {
			return nil, err
		}

		professors = append(professors, p)
	}

	return professors, nil
}

func (s *Storage) GetCoursesByIDs(ctx context.Context, ids []string) ([]domain.Course, error) {
	const query = `
        SELECT id, name, created_at
        FROM courses WHERE id = ANY($1);
    `

	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	return courses, nil
}

func dayCodesToInts(days []domain.DayCode) []int32 {
	out := make([]int32, len(days))
	for i, d := range days {
		out[i] = int32(d)
	}
	return out
}

func intsToDayCodes(days []int32) []domain.DayCode {
	out := make([]domain.DayCode, len(days))
	for i, d := range days {
		out[i] = domain.DayCode(d)
	}
	return out
}
