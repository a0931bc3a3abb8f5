package domain

import "time"

// ProfessorSubmission is the untrusted form payload. At least one of
// NationalCode or Mobile must be present; that rule and the
// preferDays-within-days rule are enforced at struct level by the validator.
type ProfessorSubmission struct {
	Name         string          `json:"name" validate:"required"`
	NationalCode string          `json:"nationalCode" validate:"omitempty,len=10"`
	Mobile       string          `json:"mobile" validate:"omitempty,len=11"`
	PreferDays   []DayCode       `json:"preferDays" validate:"min=1"`
	Courses      []string        `json:"courses" validate:"min=1,dive,required"`
	Days         []ScheduleEntry `json:"days" validate:"min=1,dive"`
}

type Professor struct {
	ID           string          `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	NationalCode *string         `db:"national_code" json:"national_code"`
	Mobile       *string         `db:"mobile" json:"mobile"`
	PreferDays   []DayCode       `db:"prefer_days" json:"prefer_days"`
	Days         []ScheduleEntry `db:"days" json:"days"`
	Courses      []string        `db:"courses" json:"courses"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// Composite type for the listing response

type ProfessorWithCourses struct {
	Professor
	CourseItems []Course `json:"course_items"`
}
