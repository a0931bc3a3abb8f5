package postgres

import (
	"context"
	_ "embed"
	"encoding/csv"
	"fmt"
	"log"
	"strings"
)

//go:embed courses.csv
var coursesCSV string

// SeedCourses loads the course catalog from the embedded CSV. It is a no-op
// when the table already has rows, so it is safe to run on every start.
func (s *Storage) SeedCourses(ctx context.Context) error {
	var count int
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM courses").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check courses: %w", err)
	}

	if count > 0 {
		log.Println("Courses already seeded, skipping")
		return nil
	}

	reader := csv.NewReader(strings.NewReader(coursesCSV))
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse courses csv: %w", err)
	}

	const query = `INSERT INTO courses (id, name) VALUES ($1, $2);`

	// records[0] is the header row
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		if _, err := s.pool.Exec(ctx, query, record[0], record[1]); err != nil {
			return fmt.Errorf("failed to seed course %s: %w", record[0], err)
		}
	}

	log.Printf("Seeded %d courses", len(records)-1)
	return nil
}
