package schedule

import "github.com/phrazzld/scry-schedule/internal/domain"

// Clamp constrains value into the inclusive range [min, max].
//
// An absent value passes through unchanged and an absent bound does not
// constrain its side. The lower bound is applied before the upper bound, so
// when min lies after max the result is max. Normalize relies on this to pin
// a card that has no room left to the last day of the window.
func Clamp(value, min, max domain.Date) domain.Date {
	if value.IsZero() {
		return value
	}
	if !min.IsZero() && value.Before(min) {
		value = min
	}
	if !max.IsZero() && value.After(max) {
		value = max
	}
	return value
}

// MaxOf returns the later of a and b. An absent operand loses to a present one.
func MaxOf(a, b domain.Date) domain.Date {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	if b.After(a) {
		return b
	}
	return a
}

// MinOf returns the earlier of a and b. An absent operand loses to a present one.
func MinOf(a, b domain.Date) domain.Date {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	if b.Before(a) {
		return b
	}
	return a
}

// AddDays shifts date by n calendar days; n may be negative.
func AddDays(date domain.Date, n int) domain.Date {
	return date.AddDays(n)
}

// orDefault returns value when present, otherwise fallback.
func orDefault(value, fallback domain.Date) domain.Date {
	if value.IsZero() {
		return fallback
	}
	return value
}
