package puzzle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateSeed(t *testing.T) {
	cases := []struct {
		t    time.Time
		want int64
	}{
		{date(2024, time.March, 7), 20240307},
		{date(2000, time.January, 1), 20000101},
		{date(1999, time.December, 31), 19991231},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DateSeed(tc.t))
	}
}

func TestDateSeedIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, time.March, 7, 1, 2, 3, 0, time.UTC)
	evening := time.Date(2024, time.March, 7, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DateSeed(morning), DateSeed(evening))
}

func TestDailyIsStableWithinADate(t *testing.T) {
	d := date(2024, time.March, 7)
	a := DailyAt(d)
	b := DailyAt(d)
	require.True(t, a.Equal(b), "same date produced different boards:\n%s\n---\n%s", a, b)

	assert.Equal(t, 6, a.NumRows())
	assert.Equal(t, 6, a.NumCols())
}

func TestDailyDiffersAcrossDates(t *testing.T) {
	a := DailyAt(date(2024, time.March, 7))
	b := DailyAt(date(2024, time.March, 8))
	assert.False(t, a.Equal(b), "consecutive dates produced identical boards")
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-03-07", DateKey(date(2024, time.March, 7)))
}
