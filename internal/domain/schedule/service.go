package schedule

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-schedule/internal/domain"
)

// Service defines the interface for schedule allocation operations
type Service interface {
	// Normalize re-derives card intervals for the window
	Normalize(materials []domain.Material, window domain.CampaignWindow) []domain.Material

	// Append adds an empty card after the last one and returns its index
	Append(materials []domain.Material, window domain.CampaignWindow) ([]domain.Material, int)

	// Remove drops the card at index without renormalizing
	Remove(materials []domain.Material, index int) []domain.Material

	// ValidateMaterials checks the cards against the window and media kind
	ValidateMaterials(
		materials []domain.Material,
		window domain.CampaignWindow,
		kind domain.MediaKind,
	) error

	// ValidateSchedule checks the window, the media kind and the cards of a full schedule
	ValidateSchedule(s domain.Schedule) error
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
	logger *slog.Logger
}

// NewDefaultService creates a new schedule service with default parameters
func NewDefaultService(logger *slog.Logger) Service {
	return NewServiceWithParams(NewDefaultParams(), logger)
}

// NewServiceWithParams creates a new schedule service with custom parameters
func NewServiceWithParams(params *Params, logger *slog.Logger) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &defaultService{
		params: params,
		logger: logger.With("component", "schedule_service"),
	}
}

func (s *defaultService) Normalize(
	materials []domain.Material,
	window domain.CampaignWindow,
) []domain.Material {
	out := Normalize(materials, window)
	s.logger.Debug("normalized materials",
		"material_count", len(out),
		"window_start", window.Start.String(),
		"window_end", window.End.String())
	return out
}

func (s *defaultService) Append(
	materials []domain.Material,
	window domain.CampaignWindow,
) ([]domain.Material, int) {
	out, index := AppendMaterial(materials, window)
	s.logger.Debug("appended material",
		"index", index,
		"start_date", out[index].StartDate.String(),
		"end_date", out[index].EndDate.String())
	return out, index
}

func (s *defaultService) Remove(materials []domain.Material, index int) []domain.Material {
	out := RemoveMaterial(materials, index)
	s.logger.Debug("removed material", "index", index, "material_count", len(out))
	return out
}

func (s *defaultService) ValidateMaterials(
	materials []domain.Material,
	window domain.CampaignWindow,
	kind domain.MediaKind,
) error {
	var err error
	if s.params.CollectAll {
		err = ValidateAll(materials, window, kind)
	} else {
		err = Validate(materials, window, kind)
	}
	if err != nil {
		s.logger.Debug("materials failed validation", "error", err)
	}
	return err
}

func (s *defaultService) ValidateSchedule(sched domain.Schedule) error {
	if !sched.MediaKind.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidMediaKind, sched.MediaKind)
	}

	if err := ValidateWindow(sched.Window, s.today()); err != nil {
		s.logger.Debug("campaign window failed validation", "error", err)
		return err
	}

	return s.ValidateMaterials(sched.Materials, sched.Window, sched.MediaKind)
}

func (s *defaultService) today() domain.Date {
	if s.params.Now == nil {
		return domain.Date{}
	}
	return domain.DateOf(s.params.Now())
}
