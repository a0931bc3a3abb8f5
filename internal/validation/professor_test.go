package validation

import (
	"testing"

	"github.com/devalimotahari/uni-schedule-form/internal/domain"
)

func validSubmission() domain.ProfessorSubmission {
	return domain.ProfessorSubmission{
		Name:       "Dr. A",
		Mobile:     "09121234567",
		PreferDays: []domain.DayCode{0},
		Courses:    []string{"c1"},
		Days: []domain.ScheduleEntry{
			{Day: 0, StartTime: "08:00", EndTime: "10:00"},
		},
	}
}

func TestValidate_ValidSubmission(t *testing.T) {
	v := NewProfessor()

	sub := validSubmission()
	if errs := v.Validate(&sub); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_MissingContact(t *testing.T) {
	v := NewProfessor()

	sub := validSubmission()
	sub.Mobile = ""
	sub.NationalCode = ""

	errs := v.Validate(&sub)
	if errs == nil {
		t.Fatal("expected validation to fail")
	}
	if !contains(errs["mobile"], MsgContact) {
		t.Errorf("expected contact error on mobile, got %v", errs)
	}
}

func TestValidate_NationalCodeAloneIsEnough(t *testing.T) {
	v := NewProfessor()

	sub := validSubmission()
	sub.Mobile = ""
	sub.NationalCode = "1234567890"

	if errs := v.Validate(&sub); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_NationalCodeLength(t *testing.T) {
	v := NewProfessor()

	for _, code := range []string{"123456789", "12345678901"} {
		sub := validSubmission()
		sub.NationalCode = code

		errs := v.Validate(&sub)
		if errs == nil {
			t.Fatalf("expected national code %q to fail", code)
		}
		if !contains(errs["nationalCode"], MsgNationalCode) {
			t.Errorf("national code %q: expected error on nationalCode, got %v", code, errs)
		}
	}
}

func TestValidate_MobileLength(t *testing.T) {
	v := NewProfessor()

	for _, mobile := range []string{"0912123456", "091212345678"} {
		sub := validSubmission()
		sub.Mobile = mobile

		errs := v.Validate(&sub)
		if errs == nil {
			t.Fatalf("expected mobile %q to fail", mobile)
		}
		if !contains(errs["mobile"], MsgMobile) {
			t.Errorf("mobile %q: expected error on mobile, got %v", mobile, errs)
		}
	}
}

func TestValidate_TimeFormat(t *testing.T) {
	v := NewProfessor()

	for _, start := range []string{"8:00", "08:0", "0800", "ab:cd", ""} {
		sub := validSubmission()
		sub.Days[0].StartTime = start

		errs := v.Validate(&sub)
		if errs == nil {
			t.Fatalf("expected start time %q to fail", start)
		}
		if len(errs["days[0].startTime"]) == 0 {
			t.Errorf("start time %q: expected error on days[0].startTime, got %v", start, errs)
		}
	}
}

func TestValidate_EndTimeFormat(t *testing.T) {
	v := NewProfessor()

	sub := validSubmission()
	sub.Days[0].EndTime = "10:0"

	errs := v.Validate(&sub)
	if !contains(errs["days[0].endTime"], MsgTimeFormat) {
		t.Errorf("expected time format error on days[0].endTime, got %v", errs)
	}
}

func TestValidate_StartAfterEndIsAccepted(t *testing.T) {
	v := NewProfessor()

	// Only the format is checked; ordering of start and end is not.
	sub := validSubmission()
	sub.Days[0].StartTime = "10:00"
	sub.Days[0].EndTime = "08:00"

	if errs := v.Validate(&sub); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_NameRequired(t *testing.T) {
	v := NewProfessor()

	sub := validSubmission()
	sub.Name = ""

	errs := v.Validate(&sub)
	if !contains(errs["name"], MsgName) {
		t.Errorf("expected name error, got %v", errs)
	}
}

func TestValidate_EmptyCollections(t *testing.T) {
	v := NewProfessor()

	sub := validSubmission()
	sub.PreferDays = nil
	sub.Courses = nil
	sub.Days = nil

	errs := v.Validate(&sub)
	if !contains(errs["preferDays"], MsgPreferDays) {
		t.Errorf("expected preferDays error, got %v", errs)
	}
	if !contains(errs["courses"], MsgCourses) {
		t.Errorf("expected courses error, got %v", errs)
	}
	if !contains(errs["days"], MsgDays) {
		t.Errorf("expected days error, got %v", errs)
	}
}

func TestValidate_PreferDaysOutsideSchedule(t *testing.T) {
	v := NewProfessor()

	sub := validSubmission()
	sub.PreferDays = []domain.DayCode{1}

	errs := v.Validate(&sub)
	if !contains(errs["preferDays"], MsgPreferDaysScope) {
		t.Errorf("expected preferDays scope error, got %v", errs)
	}
}

func TestValidate_DayOutOfRange(t *testing.T) {
	v := NewProfessor()

	sub := validSubmission()
	sub.PreferDays = []domain.DayCode{7}
	sub.Days[0].Day = 7

	errs := v.Validate(&sub)
	if !contains(errs["days[0].day"], MsgDayRange) {
		t.Errorf("expected day range error, got %v", errs)
	}
}

func TestValidate_CollectsAcrossFields(t *testing.T) {
	v := NewProfessor()

	sub := validSubmission()
	sub.Name = ""
	sub.Mobile = ""
	sub.Days[0].StartTime = "8:00"

	errs := v.Validate(&sub)
	for _, field := range []string{"name", "mobile", "days[0].startTime"} {
		if len(errs[field]) == 0 {
			t.Errorf("expected error on %s, got %v", field, errs)
		}
	}
}

func contains(messages []string, want string) bool {
	for _, m := range messages {
		if m == want {
			return true
		}
	}
	return false
}
