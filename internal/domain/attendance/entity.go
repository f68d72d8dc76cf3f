package attendance

import "time"

// Record is one row per (employee, calendar date). The unique index on that
// pair is the only duplicate guard; callers see a uniqueness violation on a
// second insert for the same day.
type Record struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     Status
	CheckIn    *time.Time
	CheckOut   *time.Time
	Remarks    *string
	IsLocked   bool
	LockedBy   *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
	StatusLeave   Status = "Leave"
	StatusHoliday Status = "Holiday"
	StatusWeekend Status = "Weekend"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave, StatusHoliday, StatusWeekend:
		return true
	}
	return false
}

// RecordWithEmployee joins the record to its profile and account for the
// stats/export read side; no aggregation happens server-side.
type RecordWithEmployee struct {
	Record

	EmployeeCode string
	EmployeeName string
	Department   *string
	Branch       *string
}

// MonthWindow returns the inclusive [first, last] day bounds for a month. Lock
// and unlock apply to every record inside the window and none outside it.
func MonthWindow(month, year int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
