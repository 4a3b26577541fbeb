package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-schedule/internal/domain"
	"github.com/phrazzld/scry-schedule/internal/domain/schedule"
	"github.com/phrazzld/scry-schedule/internal/platform/logger"
)

// CodeSlot addresses a card's single content code in preview operations;
// 0..3 address its video slots.
const CodeSlot = -1

// PreviewResolver looks up the displayable preview for a content-library code.
type PreviewResolver interface {
	// ResolvePreview returns a preview reference for code, or an error when the
	// code is unknown or the lookup fails
	ResolvePreview(ctx context.Context, kind domain.MediaKind, code string) (string, error)
}

// Submitter receives validated schedules.
type Submitter interface {
	// SubmitSchedule hands a validated schedule to its destination
	SubmitSchedule(ctx context.Context, s domain.Schedule) error
}

// Draft is an editing session over one schedule. It re-derives card
// intervals after window edits and list-shape edits, applies late preview
// results only to cards whose code has not changed since the lookup started,
// and validates before handing the schedule to a Submitter.
//
// A Draft is safe for concurrent use.
type Draft struct {
	mu        sync.Mutex
	svc       schedule.Service
	logger    *slog.Logger
	window    domain.CampaignWindow
	kind      domain.MediaKind
	materials []domain.Material
}

// NewDraft creates a draft holding a single card spanning the window.
// It returns an error if svc is nil or kind is not a supported media kind.
func NewDraft(
	svc schedule.Service,
	window domain.CampaignWindow,
	kind domain.MediaKind,
	log *slog.Logger,
) (*Draft, error) {
	if svc == nil {
		return nil, NewDraftError("new_draft", "schedule service cannot be nil", ErrNilDependency)
	}
	if !kind.IsValid() {
		return nil, &DraftError{Operation: "new_draft", Message: "unsupported media kind", Err: domain.ErrInvalidMediaKind}
	}
	if log == nil {
		log = slog.Default()
	}

	materials, _ := svc.Append(nil, window)
	return &Draft{
		svc:       svc,
		logger:    log.With("component", "schedule_draft"),
		window:    window,
		kind:      kind,
		materials: svc.Normalize(materials, window),
	}, nil
}

// Snapshot returns a deep copy of the current schedule.
func (d *Draft) Snapshot() domain.Schedule {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Draft) snapshotLocked() domain.Schedule {
	return domain.Schedule{
		Window:    d.window,
		MediaKind: d.kind,
		Materials: domain.CloneMaterials(d.materials),
	}
}

// Len returns the number of cards.
func (d *Draft) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.materials)
}

// SetWindow stores a new campaign window and re-derives every card interval.
func (d *Draft) SetWindow(start, end domain.Date) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.window = domain.CampaignWindow{Start: start, End: end}
	d.materials = d.svc.Normalize(d.materials, d.window)
	d.logger.Debug("window changed",
		"window_start", start.String(),
		"window_end", end.String(),
		"material_count", len(d.materials))
}

// SetMediaKind switches the kind of content the schedule delivers. Card
// content is kept; validation decides which fields matter.
func (d *Draft) SetMediaKind(kind domain.MediaKind) error {
	if !kind.IsValid() {
		return &DraftError{Operation: "set_media_kind", Message: "unsupported media kind", Err: domain.ErrInvalidMediaKind}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.kind = kind
	return nil
}

// AddMaterial appends an empty card after the last one and returns its
// position and ID.
func (d *Draft) AddMaterial() (int, uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	materials, index := d.svc.Append(d.materials, d.window)
	d.materials = d.svc.Normalize(materials, d.window)
	id := d.materials[index].ID

	d.logger.Debug("material added", "index", index, "material_id", id)
	return index, id
}

// RemoveMaterial drops the card at index and re-derives the remaining
// intervals. The last remaining card cannot be removed.
func (d *Draft) RemoveMaterial(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkIndexLocked(index); err != nil {
		return err
	}
	if len(d.materials) == 1 {
		return ErrLastMaterial
	}

	id := d.materials[index].ID
	d.materials = d.svc.Normalize(d.svc.Remove(d.materials, index), d.window)
	d.logger.Debug("material removed", "index", index, "material_id", id)
	return nil
}

// SetMaterialDates writes a direct edit of a card's interval. The list is not
// re-derived, so the edit may leave cards overlapping until validation
// reports it.
func (d *Draft) SetMaterialDates(index int, start, end domain.Date) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkIndexLocked(index); err != nil {
		return err
	}
	d.materials[index].StartDate = start
	d.materials[index].EndDate = end
	return nil
}

// SetCode sets the single content code of a card. A changed code discards the
// card's preview.
func (d *Draft) SetCode(index int, code string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkIndexLocked(index); err != nil {
		return err
	}
	m := &d.materials[index]
	if m.Code != code {
		m.PreviewRef = ""
	}
	m.Code = code
	return nil
}

// SetVideoSlot sets one code/script pair of a card. A changed code discards
// the slot's preview.
func (d *Draft) SetVideoSlot(index, slot int, code, script string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkIndexLocked(index); err != nil {
		return err
	}
	if slot < 0 || slot >= domain.VideoSlotCount {
		return ErrSlotIndex
	}
	s := &d.materials[index].Slots[slot]
	if s.Code != code {
		s.PreviewRef = ""
	}
	s.Code = code
	s.Script = script
	return nil
}

// ApplyPreview stores a preview reference on the card with the given ID if
// the addressed code still equals code. It reports whether the preview was
// applied; results for removed cards or replaced codes are dropped.
func (d *Draft) ApplyPreview(id uuid.UUID, slot int, code, ref string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	m := d.findLocked(id)
	if m == nil {
		return false
	}

	switch {
	case slot == CodeSlot:
		if m.Code != code {
			return false
		}
		m.PreviewRef = ref
	case slot >= 0 && slot < domain.VideoSlotCount:
		if m.Slots[slot].Code != code {
			return false
		}
		m.Slots[slot].PreviewRef = ref
	default:
		return false
	}
	return true
}

// ResolvePreview looks up the preview for the code currently held at
// (id, slot) and applies it if the code is unchanged when the lookup
// returns. The lock is not held while the resolver runs. It reports whether
// a preview was applied; a blank code resolves nothing.
func (d *Draft) ResolvePreview(
	ctx context.Context,
	id uuid.UUID,
	slot int,
	resolver PreviewResolver,
) (bool, error) {
	if resolver == nil {
		return false, ErrNilDependency
	}
	log := d.loggerFor(ctx)

	d.mu.Lock()
	m := d.findLocked(id)
	if m == nil {
		d.mu.Unlock()
		return false, ErrMaterialNotFound
	}
	var code string
	switch {
	case slot == CodeSlot:
		code = m.Code
	case slot >= 0 && slot < domain.VideoSlotCount:
		code = m.Slots[slot].Code
	default:
		d.mu.Unlock()
		return false, ErrSlotIndex
	}
	kind := d.kind
	d.mu.Unlock()

	if strings.TrimSpace(code) == "" {
		return false, nil
	}

	ref, err := resolver.ResolvePreview(ctx, kind, code)
	if err != nil {
		log.Error("preview lookup failed",
			"error", err,
			"material_id", id,
			"slot", slot,
			"code", code)
		return false, NewDraftError("resolve_preview", "preview lookup failed", err)
	}

	applied := d.ApplyPreview(id, slot, code, ref)
	if !applied {
		log.Debug("stale preview dropped", "material_id", id, "slot", slot, "code", code)
	}
	return applied, nil
}

// Validate checks the current schedule without submitting it.
func (d *Draft) Validate() error {
	return d.svc.ValidateSchedule(d.Snapshot())
}

// Submit validates the current schedule and, only if it is valid, hands a
// copy to submitter. Validation failures are returned as produced by the
// schedule service; submitter failures are wrapped in a DraftError.
func (d *Draft) Submit(ctx context.Context, submitter Submitter) error {
	if submitter == nil {
		return ErrNilDependency
	}
	log := d.loggerFor(ctx)

	snapshot := d.Snapshot()
	if err := d.svc.ValidateSchedule(snapshot); err != nil {
		log.Info("schedule rejected", "error", err, "material_count", len(snapshot.Materials))
		return err
	}

	if err := submitter.SubmitSchedule(ctx, snapshot); err != nil {
		log.Error("schedule submission failed", "error", err)
		return NewDraftError("submit", "failed to submit schedule", err)
	}

	log.Info("schedule submitted",
		"media_kind", string(snapshot.MediaKind),
		"material_count", len(snapshot.Materials))
	return nil
}

func (d *Draft) checkIndexLocked(index int) error {
	if index < 0 || index >= len(d.materials) {
		return ErrMaterialIndex
	}
	return nil
}

func (d *Draft) findLocked(id uuid.UUID) *domain.Material {
	for i := range d.materials {
		if d.materials[i].ID == id {
			return &d.materials[i]
		}
	}
	return nil
}

// loggerFor prefers a request-scoped logger carried on ctx.
func (d *Draft) loggerFor(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With("component", "schedule_draft")
	}
	return d.logger
}
