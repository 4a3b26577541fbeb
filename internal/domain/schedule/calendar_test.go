package schedule

import (
	"testing"

	"github.com/phrazzld/scry-schedule/internal/domain"
	"github.com/stretchr/testify/assert"
)

// day parses a YYYY-MM-DD literal; an empty string yields the absent date.
func day(t testing.TB, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestClamp(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		value    string
		min      string
		max      string
		expected string
	}{
		{name: "below range", value: "2024-01-05", min: "2024-01-10", max: "2024-01-20", expected: "2024-01-10"},
		{name: "inside range", value: "2024-01-15", min: "2024-01-10", max: "2024-01-20", expected: "2024-01-15"},
		{name: "above range", value: "2024-01-25", min: "2024-01-10", max: "2024-01-20", expected: "2024-01-20"},
		{name: "on lower bound", value: "2024-01-10", min: "2024-01-10", max: "2024-01-20", expected: "2024-01-10"},
		{name: "on upper bound", value: "2024-01-20", min: "2024-01-10", max: "2024-01-20", expected: "2024-01-20"},
		{name: "absent value passes through", value: "", min: "2024-01-10", max: "2024-01-20", expected: ""},
		{name: "absent min", value: "2023-06-01", min: "", max: "2024-01-20", expected: "2023-06-01"},
		{name: "absent max", value: "2030-06-01", min: "2024-01-10", max: "", expected: "2030-06-01"},
		{name: "no bounds", value: "2024-02-02", min: "", max: "", expected: "2024-02-02"},
		{name: "crossed bounds resolve to max", value: "2024-03-10", min: "2024-04-01", max: "2024-03-31", expected: "2024-03-31"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Clamp(day(t, tc.value), day(t, tc.min), day(t, tc.max))
			assert.Equal(t, tc.expected, got.String())
		})
	}
}

func TestMaxOfMinOf(t *testing.T) {
	t.Parallel()

	early := day(t, "2024-01-01")
	late := day(t, "2024-02-01")
	absent := domain.Date{}

	assert.Equal(t, late, MaxOf(early, late))
	assert.Equal(t, late, MaxOf(late, early))
	assert.Equal(t, early, MaxOf(absent, early), "absent operand loses")
	assert.Equal(t, early, MaxOf(early, absent), "absent operand loses")
	assert.True(t, MaxOf(absent, absent).IsZero())

	assert.Equal(t, early, MinOf(early, late))
	assert.Equal(t, early, MinOf(late, early))
	assert.Equal(t, late, MinOf(absent, late), "absent operand loses")
	assert.Equal(t, late, MinOf(late, absent), "absent operand loses")
	assert.True(t, MinOf(absent, absent).IsZero())
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-04-01", AddDays(day(t, "2024-03-31"), 1).String())
	assert.Equal(t, "2024-02-29", AddDays(day(t, "2024-03-01"), -1).String())
	assert.Equal(t, "2025-01-01", AddDays(day(t, "2024-12-31"), 1).String())
	assert.Equal(t, "2024-03-31", AddDays(day(t, "2024-03-31"), 0).String())
	assert.True(t, AddDays(domain.Date{}, 3).IsZero())
}
