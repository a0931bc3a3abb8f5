package domain

import (
	"encoding/json"
	"strconv"
)

// DayCode is a weekday index, 0 = Saturday through 6 = Friday.
type DayCode int

// UnmarshalJSON accepts both numeric and string-encoded day values; the form
// sends either depending on the widget that produced the field.
func (d *DayCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*d = DayCode(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = DayCode(n)
	return nil
}

// ScheduleEntry is one availability window: a day plus a start and end time.
type ScheduleEntry struct {
	Day       DayCode `json:"day" validate:"min=0,max=6"`
	StartTime string  `json:"startTime" validate:"required,hhmm"`
	EndTime   string  `json:"endTime" validate:"required,hhmm"`
}

type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
