package domain

import (
	"encoding/json"
	"testing"
)

func TestScheduleEntry_UnmarshalStringDay(t *testing.T) {
	var entries []ScheduleEntry
	payload := `[{"day":"0","startTime":"08:00","endTime":"10:00"}]`

	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if entries[0].Day != 0 {
		t.Errorf("expected day 0, got %d", entries[0].Day)
	}
}

func TestScheduleEntry_UnmarshalNumericDay(t *testing.T) {
	var entries []ScheduleEntry
	payload := `[{"day":3,"startTime":"08:00","endTime":"10:00"}]`

	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if entries[0].Day != 3 {
		t.Errorf("expected day 3, got %d", entries[0].Day)
	}
}

func TestScheduleEntry_UnmarshalBadDay(t *testing.T) {
	var entries []ScheduleEntry
	payload := `[{"day":"monday","startTime":"08:00","endTime":"10:00"}]`

	if err := json.Unmarshal([]byte(payload), &entries); err == nil {
		t.Fatal("expected non-numeric day to fail")
	}
}

func TestScheduleEntry_MarshalNumericDay(t *testing.T) {
	data, err := json.Marshal(ScheduleEntry{Day: 5, StartTime: "08:00", EndTime: "10:00"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"day":5,"startTime":"08:00","endTime":"10:00"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}
