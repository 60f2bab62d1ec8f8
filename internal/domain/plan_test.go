package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		label string
		want  Weekday
		ok    bool
	}{
		{"Monday", Monday, true},
		{"monday", Monday, true},
		{"SUNDAY", Sunday, true},
		{"  Friday  ", Friday, true},
		{"Funday", Monday, false},
		{"", Monday, false},
	}
	for _, tc := range cases {
		got, ok := ParseWeekday(tc.label)
		assert.Equal(t, tc.ok, ok, "label %q", tc.label)
		assert.Equal(t, tc.want, got, "label %q", tc.label)
	}
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "Unknown", Weekday(7).String())
	assert.Equal(t, "Unknown", Weekday(-1).String())
}

func TestFromTime(t *testing.T) {
	assert.Equal(t, Monday, FromTime(time.Monday))
	assert.Equal(t, Saturday, FromTime(time.Saturday))
	assert.Equal(t, Sunday, FromTime(time.Sunday))
}

func TestWeekdaysCanonicalOrder(t *testing.T) {
	days := Weekdays()
	assert.Len(t, days, 7)
	assert.Equal(t, Monday, days[0])
	assert.Equal(t, Sunday, days[6])
}
