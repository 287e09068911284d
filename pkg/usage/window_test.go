package usage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prospectly/platform/pkg/usage"
)

func TestDayStart(t *testing.T) {
	t.Parallel()

	in := time.Date(2025, time.March, 14, 15, 9, 26, 535, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), usage.DayStart(in))

	// Non-UTC input is normalized to the UTC calendar day.
	est := time.FixedZone("EST", -5*3600)
	late := time.Date(2025, time.March, 14, 22, 30, 0, 0, est) // 03:30 UTC on the 15th
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), usage.DayStart(late))
}

func TestMonthStart(t *testing.T) {
	t.Parallel()

	in := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), usage.MonthStart(in))

	first := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, first, usage.MonthStart(first))
}
