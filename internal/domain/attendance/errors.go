package attendance

import "errors"

var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrDuplicateRecord  = errors.New("attendance already recorded for this employee and date")
	ErrNoOpenRecord     = errors.New("no open attendance record for today")
	ErrRecordLocked     = errors.New("attendance record is locked")
	ErrNoProfileForUser = errors.New("caller has no employment profile")
)
