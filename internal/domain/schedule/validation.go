package schedule

import (
	"sort"

	"github.com/phrazzld/scry-schedule/internal/domain"
)

// Validate checks a material list before submission and reports the first
// broken rule, or nil when the list is acceptable.
//
// Rules run in this order:
//  1. at least one card holds data (EMPTY_MATERIAL_LIST)
//  2. in list order, every card starts after the previous one ends
//     (INDEX_ORDER_OVERLAP)
//  3. every card has both dates, a forward range inside the window and the
//     content references its media kind requires (MISSING_DATE,
//     INVERTED_RANGE, OUT_OF_WINDOW, INCOMPLETE_VIDEO_SLOTS, MISSING_CODE)
//  4. sorted by start date, every card starts after the previous one ends
//     (DATE_ORDER_OVERLAP)
//
// Cards without any data are skipped by rules 2 to 4. Card pairs where a
// needed date is missing are skipped by the overlap rules; rule 3 reports
// the missing date instead.
//
// The returned error is a *ValidationError holding exactly one violation.
func Validate(
	materials []domain.Material,
	window domain.CampaignWindow,
	kind domain.MediaKind,
) error {
	return toError(validate(materials, window, kind, true))
}

// ValidateAll applies the same rules as Validate but records every violation
// instead of stopping at the first. An empty list still stops at rule 1.
func ValidateAll(
	materials []domain.Material,
	window domain.CampaignWindow,
	kind domain.MediaKind,
) error {
	return toError(validate(materials, window, kind, false))
}

// ValidateWindow checks the campaign window itself: both bounds set, start on
// or before end, and start not before today. A zero today skips the last
// check.
func ValidateWindow(window domain.CampaignWindow, today domain.Date) error {
	switch {
	case !window.IsDefined():
		return toError([]Violation{{Code: CodeMissingWindow, Index: NoCard}})
	case window.End.Before(window.Start):
		return toError([]Violation{{Code: CodeInvertedWindow, Index: NoCard}})
	case !today.IsZero() && window.Start.Before(today):
		return toError([]Violation{{Code: CodeWindowInPast, Index: NoCard}})
	}
	return nil
}

// candidate is a card that takes part in rules 2 to 4, with its list position.
type candidate struct {
	index    int
	material domain.Material
}

// collector accumulates violations and tells the caller when to stop.
type collector struct {
	stopAtFirst bool
	violations  []Violation
}

// add records a violation and reports whether validation should stop.
func (c *collector) add(code ViolationCode, index int) bool {
	c.violations = append(c.violations, Violation{Code: code, Index: index})
	return c.stopAtFirst
}

func validate(
	materials []domain.Material,
	window domain.CampaignWindow,
	kind domain.MediaKind,
	stopAtFirst bool,
) []Violation {
	c := &collector{stopAtFirst: stopAtFirst}

	candidates := make([]candidate, 0, len(materials))
	for i, m := range materials {
		if m.HasData() {
			candidates = append(candidates, candidate{index: i, material: m})
		}
	}

	if len(candidates) == 0 {
		c.add(CodeEmptyMaterialList, NoCard)
		return c.violations
	}

	if checkIndexOrder(c, candidates) {
		return c.violations
	}
	if checkCards(c, candidates, window, kind) {
		return c.violations
	}
	checkDateOrder(c, candidates)

	return c.violations
}

// checkIndexOrder applies rule 2 to the candidates in list order.
func checkIndexOrder(c *collector, candidates []candidate) bool {
	for i := 1; i < len(candidates); i++ {
		prev, cur := candidates[i-1].material, candidates[i].material
		if prev.EndDate.IsZero() || cur.StartDate.IsZero() {
			continue
		}
		if !cur.StartDate.After(prev.EndDate) {
			if c.add(CodeIndexOrderOverlap, candidates[i].index) {
				return true
			}
		}
	}
	return false
}

// checkCards applies rule 3 to every candidate. At most one date violation
// and one content violation are recorded per card.
func checkCards(
	c *collector,
	candidates []candidate,
	window domain.CampaignWindow,
	kind domain.MediaKind,
) bool {
	for _, cand := range candidates {
		m := cand.material

		var dateCode ViolationCode
		switch {
		case m.StartDate.IsZero() || m.EndDate.IsZero():
			dateCode = CodeMissingDate
		case m.EndDate.Before(m.StartDate):
			dateCode = CodeInvertedRange
		case !window.Contains(m.StartDate, m.EndDate):
			dateCode = CodeOutOfWindow
		}
		if dateCode != "" && c.add(dateCode, cand.index) {
			return true
		}

		if !m.HasCompleteContent(kind) {
			code := CodeMissingCode
			if kind == domain.MediaKindVideo {
				code = CodeIncompleteVideoSlots
			}
			if c.add(code, cand.index) {
				return true
			}
		}
	}
	return false
}

// checkDateOrder applies rule 4 to the dated candidates sorted by start date.
func checkDateOrder(c *collector, candidates []candidate) bool {
	dated := make([]candidate, 0, len(candidates))
	for _, cand := range candidates {
		if !cand.material.StartDate.IsZero() && !cand.material.EndDate.IsZero() {
			dated = append(dated, cand)
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].material.StartDate.Before(dated[j].material.StartDate)
	})

	for i := 1; i < len(dated); i++ {
		prev, cur := dated[i-1].material, dated[i].material
		if !cur.StartDate.After(prev.EndDate) {
			if c.add(CodeDateOrderOverlap, dated[i].index) {
				return true
			}
		}
	}
	return false
}

func toError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
