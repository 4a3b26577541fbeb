package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MediaKind identifies the type of content a schedule delivers.
type MediaKind string

// Supported media kinds
const (
	MediaKindVideo MediaKind = "VIDEO"
	MediaKindImage MediaKind = "IMAGE"
	MediaKindPDF   MediaKind = "PDF"
	MediaKindPPT   MediaKind = "PPT"
)

// VideoSlotCount is the number of code/script pairs a VIDEO card carries.
const VideoSlotCount = 4

// ParseMediaKind converts a case-insensitive name into a MediaKind.
func ParseMediaKind(s string) (MediaKind, error) {
	kind := MediaKind(strings.ToUpper(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMediaKind, s)
	}
	return kind, nil
}

// IsValid reports whether k is one of the supported kinds.
func (k MediaKind) IsValid() bool {
	switch k {
	case MediaKindVideo, MediaKindImage, MediaKindPDF, MediaKindPPT:
		return true
	default:
		return false
	}
}

// VideoSlot pairs a content-library code with the narration script read over it.
type VideoSlot struct {
	Code       string `json:"code"`
	Script     string `json:"script"`
	PreviewRef string `json:"preview_ref,omitempty"`
}

// IsBlank reports whether neither the code nor the script holds text.
func (s VideoSlot) IsBlank() bool {
	return isBlank(s.Code) && isBlank(s.Script)
}

// IsComplete reports whether both the code and the script hold text.
func (s VideoSlot) IsComplete() bool {
	return !isBlank(s.Code) && !isBlank(s.Script)
}

// Material is one learning-material card, active during a sub-interval of
// the campaign window. Non-VIDEO schedules use Code; VIDEO schedules use the
// four Slots.
type Material struct {
	ID         uuid.UUID                 `json:"id"`
	StartDate  Date                      `json:"start_date"`
	EndDate    Date                      `json:"end_date"`
	Code       string                    `json:"code"`
	PreviewRef string                    `json:"preview_ref,omitempty"`
	Slots      [VideoSlotCount]VideoSlot `json:"slots"`
}

// HasData reports whether the card holds anything a user entered: both dates,
// the single code, or any video slot field. A card with only one of its two
// dates set counts as blank.
func (m Material) HasData() bool {
	if !m.StartDate.IsZero() && !m.EndDate.IsZero() {
		return true
	}
	if !isBlank(m.Code) {
		return true
	}
	for _, slot := range m.Slots {
		if !slot.IsBlank() {
			return true
		}
	}
	return false
}

// HasCompleteContent reports whether the content references required by kind
// are all filled in.
func (m Material) HasCompleteContent(kind MediaKind) bool {
	if kind == MediaKindVideo {
		for _, slot := range m.Slots {
			if !slot.IsComplete() {
				return false
			}
		}
		return true
	}
	return !isBlank(m.Code)
}

// CampaignWindow is the overall date range configured for a schedule.
type CampaignWindow struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// IsDefined reports whether both bounds are set.
func (w CampaignWindow) IsDefined() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// Contains reports whether the whole range [start, end] lies inside the
// window. An absent bound does not constrain.
func (w CampaignWindow) Contains(start, end Date) bool {
	if !w.Start.IsZero() && start.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && end.After(w.End) {
		return false
	}
	return true
}

// Schedule is the flat payload handed to the submission boundary.
type Schedule struct {
	Window    CampaignWindow `json:"window"`
	MediaKind MediaKind      `json:"media_kind"`
	Materials []Material     `json:"materials"`
}

// Clone returns a deep copy of the schedule.
func (s Schedule) Clone() Schedule {
	out := s
	out.Materials = CloneMaterials(s.Materials)
	return out
}

// CloneMaterials copies a material list. Materials hold only value fields, so
// copying the slice is a deep copy.
func CloneMaterials(materials []Material) []Material {
	if materials == nil {
		return nil
	}
	out := make([]Material, len(materials))
	copy(out, materials)
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
