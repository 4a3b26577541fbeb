package schedule

import (
	"github.com/google/uuid"
	"github.com/phrazzld/scry-schedule/internal/domain"
)

// Normalize re-derives a consistent interval for every card after the window
// or the shape of the list changed.
//
// Cards are visited in list order. Each card starts no earlier than the
// window start and no earlier than the day after the previous card's
// (already normalized) end, and ends no earlier than its own start; both
// dates are kept inside the window. Missing dates fall back to the window
// bounds. Dates the user picked are preserved whenever they already satisfy
// these constraints.
//
// When the window is not fully defined the list is returned unchanged.
// Normalize is idempotent and never modifies its input.
func Normalize(materials []domain.Material, window domain.CampaignWindow) []domain.Material {
	out := domain.CloneMaterials(materials)
	if !window.IsDefined() {
		return out
	}

	for i := range out {
		minStart := window.Start
		if i > 0 {
			minStart = MaxOf(window.Start, AddDays(out[i-1].EndDate, 1))
		}

		start := Clamp(orDefault(out[i].StartDate, window.Start), minStart, window.End)
		end := Clamp(orDefault(out[i].EndDate, window.End), start, window.End)

		out[i].StartDate = start
		out[i].EndDate = end
	}

	return out
}

// AppendMaterial adds an empty card at the end of the list and returns the new
// list together with the index of the added card.
//
// The new card starts the day after the current last card ends (or at the
// window start for the first card) and runs to the window end, both clamped
// into the window. When that leaves no room the card collapses onto the last
// day of the window; it is not moved or dropped.
func AppendMaterial(
	materials []domain.Material,
	window domain.CampaignWindow,
) ([]domain.Material, int) {
	start := window.Start
	if n := len(materials); n > 0 {
		prevEnd := materials[n-1].EndDate
		start = Clamp(MaxOf(window.Start, AddDays(prevEnd, 1)), window.Start, window.End)
	}
	end := Clamp(window.End, start, window.End)

	out := make([]domain.Material, len(materials), len(materials)+1)
	copy(out, materials)
	out = append(out, domain.Material{
		ID:        uuid.New(),
		StartDate: start,
		EndDate:   end,
	})

	return out, len(materials)
}

// RemoveMaterial returns the list without the card at index. The list is not
// renormalized; callers run Normalize afterwards. An out-of-range index
// returns an unchanged copy. Keeping at least one card is the caller's rule.
func RemoveMaterial(materials []domain.Material, index int) []domain.Material {
	if index < 0 || index >= len(materials) {
		return domain.CloneMaterials(materials)
	}

	out := make([]domain.Material, 0, len(materials)-1)
	out = append(out, materials[:index]...)
	out = append(out, materials[index+1:]...)
	return out
}
