package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindow(t *testing.T) {
	cases := []struct {
		month, year int
		first, last string
	}{
		{1, 2026, "2026-01-01", "2026-01-31"},
		{2, 2024, "2024-02-01", "2024-02-29"},
		{2, 2025, "2025-02-01", "2025-02-28"},
		{12, 2025, "2025-12-01", "2025-12-31"},
	}
	for _, c := range cases {
		first, last := MonthWindow(c.month, c.year)
		assert.Equal(t, c.first, first.Format("2006-01-02"), "month %d/%d", c.month, c.year)
		assert.Equal(t, c.last, last.Format("2006-01-02"), "month %d/%d", c.month, c.year)
		assert.Equal(t, time.UTC, first.Location())
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"Present", "Absent", "Half Day", "Leave", "Holiday", "Weekend"} {
		assert.True(t, IsValidStatus(s), "status %q", s)
	}
	for _, s := range []string{"present", "WFH", ""} {
		assert.False(t, IsValidStatus(s), "status %q", s)
	}
}
