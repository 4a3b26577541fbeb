package schedule

import (
	"fmt"
	"strings"

	"github.com/phrazzld/scry-schedule/internal/domain"
)

// ViolationCode identifies which validation rule a schedule broke.
type ViolationCode string

// Violation codes reported by Validate, ValidateAll and ValidateWindow.
const (
	CodeEmptyMaterialList    ViolationCode = "EMPTY_MATERIAL_LIST"
	CodeIndexOrderOverlap    ViolationCode = "INDEX_ORDER_OVERLAP"
	CodeMissingDate          ViolationCode = "MISSING_DATE"
	CodeInvertedRange        ViolationCode = "INVERTED_RANGE"
	CodeOutOfWindow          ViolationCode = "OUT_OF_WINDOW"
	CodeIncompleteVideoSlots ViolationCode = "INCOMPLETE_VIDEO_SLOTS"
	CodeMissingCode          ViolationCode = "MISSING_CODE"
	CodeDateOrderOverlap     ViolationCode = "DATE_ORDER_OVERLAP"

	CodeMissingWindow  ViolationCode = "MISSING_WINDOW"
	CodeInvertedWindow ViolationCode = "INVERTED_WINDOW"
	CodeWindowInPast   ViolationCode = "WINDOW_IN_PAST"
)

// NoCard is the Index of violations that concern the list or the window
// rather than a single card.
const NoCard = -1

var violationMessages = map[ViolationCode]string{
	CodeEmptyMaterialList:    "at least one learning material must be filled in",
	CodeIndexOrderOverlap:    "card overlaps the card before it",
	CodeMissingDate:          "card needs both a start and an end date",
	CodeInvertedRange:        "card ends before it starts",
	CodeOutOfWindow:          "card falls outside the campaign window",
	CodeIncompleteVideoSlots: "all four video codes and scripts are required",
	CodeMissingCode:          "card needs a content code",
	CodeDateOrderOverlap:     "card dates overlap another card",
	CodeMissingWindow:        "campaign start and end dates are required",
	CodeInvertedWindow:       "campaign ends before it starts",
	CodeWindowInPast:         "campaign cannot start in the past",
}

// Violation is a single broken rule. Index is the card's position in the
// list, or NoCard.
type Violation struct {
	Code  ViolationCode `json:"code"`
	Index int           `json:"index"`
}

// Message returns an English description of the violation.
func (v Violation) Message() string {
	msg, ok := violationMessages[v.Code]
	if !ok {
		msg = strings.ToLower(string(v.Code))
	}
	return msg
}

// String implements fmt.Stringer.
func (v Violation) String() string {
	if v.Index == NoCard {
		return fmt.Sprintf("%s: %s", v.Code, v.Message())
	}
	return fmt.Sprintf("%s (card %d): %s", v.Code, v.Index+1, v.Message())
}

// ValidationError reports the violations found in a schedule.
// It matches domain.ErrValidation with errors.Is.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return domain.ErrValidation.Error()
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s: %s", domain.ErrValidation, strings.Join(parts, "; "))
}

// Unwrap returns domain.ErrValidation to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return domain.ErrValidation
}

// Has reports whether a violation with the given code was recorded.
func (e *ValidationError) Has(code ViolationCode) bool {
	if e == nil {
		return false
	}
	for _, v := range e.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// First returns the first recorded violation.
func (e *ValidationError) First() (Violation, bool) {
	if e == nil || len(e.Violations) == 0 {
		return Violation{}, false
	}
	return e.Violations[0], true
}
