package schedule

import (
	"errors"
	"testing"

	"github.com/phrazzld/scry-schedule/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageCard(t testing.TB, start, end, code string) domain.Material {
	t.Helper()
	m := card(t, start, end)
	m.Code = code
	return m
}

func videoCard(t testing.TB, start, end string) domain.Material {
	t.Helper()
	m := card(t, start, end)
	for i := range m.Slots {
		m.Slots[i] = domain.VideoSlot{Code: "VID-" + string(rune('A'+i)), Script: "welcome to part " + string(rune('1'+i))}
	}
	return m
}

// violations extracts the violations of a validation result, failing on any
// other error type.
func violations(t *testing.T, err error) []Violation {
	t.Helper()
	if err == nil {
		return nil
	}
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected *ValidationError, got %T", err)
	return vErr.Violations
}

func TestValidate(t *testing.T) {
	t.Parallel()

	january := window(t, "2024-01-01", "2024-01-31")

	testCases := []struct {
		name      string
		materials []domain.Material
		kind      domain.MediaKind
		expected  []Violation
	}{
		{
			name:      "valid image schedule",
			materials: []domain.Material{imageCard(t, "2024-01-01", "2024-01-10", "IMG-1"), imageCard(t, "2024-01-11", "2024-01-31", "IMG-2")},
			kind:      domain.MediaKindImage,
		},
		{
			name:      "empty list",
			materials: nil,
			kind:      domain.MediaKindPDF,
			expected:  []Violation{{Code: CodeEmptyMaterialList, Index: NoCard}},
		},
		{
			name:      "only blank cards",
			materials: []domain.Material{{}, {Code: "   "}, {StartDate: day(t, "2024-01-02")}},
			kind:      domain.MediaKindPDF,
			expected:  []Violation{{Code: CodeEmptyMaterialList, Index: NoCard}},
		},
		{
			name: "blank card is skipped",
			materials: []domain.Material{
				imageCard(t, "2024-01-01", "2024-01-10", "PDF-1"),
				{},
				imageCard(t, "2024-01-11", "2024-01-20", "PDF-2"),
			},
			kind: domain.MediaKindPDF,
		},
		{
			name: "overlapping cards",
			materials: []domain.Material{
				imageCard(t, "2024-01-01", "2024-01-10", "IMG-1"),
				imageCard(t, "2024-01-05", "2024-01-15", "IMG-2"),
			},
			kind:     domain.MediaKindImage,
			expected: []Violation{{Code: CodeIndexOrderOverlap, Index: 1}},
		},
		{
			name: "same day collision",
			materials: []domain.Material{
				imageCard(t, "2024-01-01", "2024-01-10", "IMG-1"),
				imageCard(t, "2024-01-10", "2024-01-15", "IMG-2"),
			},
			kind:     domain.MediaKindImage,
			expected: []Violation{{Code: CodeIndexOrderOverlap, Index: 1}},
		},
		{
			name: "overlap reported with original index across blank card",
			materials: []domain.Material{
				imageCard(t, "2024-01-01", "2024-01-10", "IMG-1"),
				{},
				imageCard(t, "2024-01-03", "2024-01-15", "IMG-2"),
			},
			kind:     domain.MediaKindImage,
			expected: []Violation{{Code: CodeIndexOrderOverlap, Index: 2}},
		},
		{
			name: "cards listed out of date order",
			materials: []domain.Material{
				imageCard(t, "2024-01-20", "2024-01-25", "IMG-1"),
				imageCard(t, "2024-01-01", "2024-01-05", "IMG-2"),
			},
			kind:     domain.MediaKindImage,
			expected: []Violation{{Code: CodeIndexOrderOverlap, Index: 1}},
		},
		{
			name:      "out of window",
			materials: []domain.Material{imageCard(t, "2024-01-15", "2024-02-05", "IMG-1")},
			kind:      domain.MediaKindImage,
			expected:  []Violation{{Code: CodeOutOfWindow, Index: 0}},
		},
		{
			name:      "starts before window",
			materials: []domain.Material{imageCard(t, "2023-12-31", "2024-01-05", "IMG-1")},
			kind:      domain.MediaKindImage,
			expected:  []Violation{{Code: CodeOutOfWindow, Index: 0}},
		},
		{
			name:      "missing end date",
			materials: []domain.Material{imageCard(t, "2024-01-03", "", "IMG-1")},
			kind:      domain.MediaKindImage,
			expected:  []Violation{{Code: CodeMissingDate, Index: 0}},
		},
		{
			name:      "inverted range",
			materials: []domain.Material{imageCard(t, "2024-01-10", "2024-01-03", "IMG-1")},
			kind:      domain.MediaKindImage,
			expected:  []Violation{{Code: CodeInvertedRange, Index: 0}},
		},
		{
			name:      "dates without code",
			materials: []domain.Material{card(t, "2024-01-01", "2024-01-31")},
			kind:      domain.MediaKindPPT,
			expected:  []Violation{{Code: CodeMissingCode, Index: 0}},
		},
		{
			name:      "valid video schedule",
			materials: []domain.Material{videoCard(t, "2024-01-01", "2024-01-31")},
			kind:      domain.MediaKindVideo,
		},
		{
			name: "video card missing fourth code",
			materials: func() []domain.Material {
				m := videoCard(t, "2024-01-01", "2024-01-31")
				m.Slots[3].Code = ""
				return []domain.Material{m}
			}(),
			kind:     domain.MediaKindVideo,
			expected: []Violation{{Code: CodeIncompleteVideoSlots, Index: 0}},
		},
		{
			name: "video card missing a script",
			materials: func() []domain.Material {
				m := videoCard(t, "2024-01-01", "2024-01-31")
				m.Slots[1].Script = "  "
				return []domain.Material{m}
			}(),
			kind:     domain.MediaKindVideo,
			expected: []Violation{{Code: CodeIncompleteVideoSlots, Index: 0}},
		},
		{
			name:      "single code does not satisfy video",
			materials: []domain.Material{imageCard(t, "2024-01-01", "2024-01-31", "VID-1")},
			kind:      domain.MediaKindVideo,
			expected:  []Violation{{Code: CodeIncompleteVideoSlots, Index: 0}},
		},
		{
			name: "first failing card wins",
			materials: []domain.Material{
				imageCard(t, "2024-01-01", "2024-01-05", ""),
				imageCard(t, "2024-01-06", "2024-02-10", "IMG-2"),
			},
			kind:     domain.MediaKindImage,
			expected: []Violation{{Code: CodeMissingCode, Index: 0}},
		},
		{
			name: "index order is checked before completeness",
			materials: []domain.Material{
				imageCard(t, "2024-01-01", "2024-01-10", ""),
				imageCard(t, "2024-01-08", "2024-01-12", "IMG-2"),
			},
			kind:     domain.MediaKindImage,
			expected: []Violation{{Code: CodeIndexOrderOverlap, Index: 1}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.materials, january, tc.kind)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, tc.expected, violations(t, err))
		})
	}
}

func TestValidateAllCollectsEveryViolation(t *testing.T) {
	t.Parallel()

	january := window(t, "2024-01-01", "2024-01-31")
	materials := []domain.Material{
		imageCard(t, "2024-01-01", "2024-01-10", "IMG-1"),
		imageCard(t, "2024-01-05", "2024-01-15", ""),
		imageCard(t, "2024-01-20", "2024-02-03", "IMG-3"),
	}

	got := violations(t, ValidateAll(materials, january, domain.MediaKindImage))
	assert.Equal(t, []Violation{
		{Code: CodeIndexOrderOverlap, Index: 1},
		{Code: CodeMissingCode, Index: 1},
		{Code: CodeOutOfWindow, Index: 2},
		{Code: CodeDateOrderOverlap, Index: 1},
	}, got)

	assert.NoError(t, ValidateAll(materials[:1], january, domain.MediaKindImage))
}

// Index order and date order diverge once a card's own range is inverted:
// neighbours in the list look fine, but sorting by start date exposes the clash.
func TestValidateDateOrderIsIndependent(t *testing.T) {
	t.Parallel()

	january := window(t, "2024-01-01", "2024-01-31")
	materials := []domain.Material{
		imageCard(t, "2024-01-01", "2024-01-05", "IMG-1"),
		imageCard(t, "2024-01-10", "2024-01-03", "IMG-2"),
		imageCard(t, "2024-01-04", "2024-01-06", "IMG-3"),
	}

	got := violations(t, ValidateAll(materials, january, domain.MediaKindImage))
	assert.Equal(t, []Violation{
		{Code: CodeInvertedRange, Index: 1},
		{Code: CodeDateOrderOverlap, Index: 2},
	}, got)

	first := violations(t, Validate(materials, january, domain.MediaKindImage))
	assert.Equal(t, []Violation{{Code: CodeInvertedRange, Index: 1}}, first)
}

func TestCheckDateOrder(t *testing.T) {
	t.Parallel()

	candidates := []candidate{
		{index: 0, material: card(t, "2024-01-10", "2024-01-20")},
		{index: 1, material: card(t, "2024-01-01", "2024-01-10")},
		{index: 2, material: card(t, "2024-01-25", "2024-01-26")},
	}

	c := &collector{stopAtFirst: true}
	assert.True(t, checkDateOrder(c, candidates))
	assert.Equal(t, []Violation{{Code: CodeDateOrderOverlap, Index: 0}}, c.violations)

	c = &collector{stopAtFirst: true}
	assert.False(t, checkDateOrder(c, candidates[1:]))
	assert.Empty(t, c.violations)
}

func TestValidateUndefinedWindowDoesNotConstrain(t *testing.T) {
	t.Parallel()

	materials := []domain.Material{imageCard(t, "2024-01-01", "2024-12-31", "PDF-1")}
	assert.NoError(t, Validate(materials, domain.CampaignWindow{}, domain.MediaKindPDF))
}

func TestValidateNormalizedScheduleOnlyNeedsContent(t *testing.T) {
	t.Parallel()

	w := window(t, "2024-05-01", "2024-05-31")
	materials, _ := AppendMaterial(nil, w)
	materials[0].EndDate = day(t, "2024-05-10")
	materials, _ = AppendMaterial(materials, w)
	materials = Normalize(materials, w)

	err := Validate(materials, w, domain.MediaKindPDF)
	assert.Equal(t, []Violation{{Code: CodeMissingCode, Index: 0}}, violations(t, err))

	materials[0].Code = "PDF-1"
	materials[1].Code = "PDF-2"
	assert.NoError(t, Validate(materials, w, domain.MediaKindPDF))
}

func TestValidateWindow(t *testing.T) {
	t.Parallel()

	today := day(t, "2024-03-10")

	testCases := []struct {
		name     string
		window   domain.CampaignWindow
		today    domain.Date
		expected ViolationCode
	}{
		{name: "valid", window: window(t, "2024-03-10", "2024-03-31"), today: today},
		{name: "single day", window: window(t, "2024-03-12", "2024-03-12"), today: today},
		{name: "missing end", window: domain.CampaignWindow{Start: today}, today: today, expected: CodeMissingWindow},
		{name: "missing both", window: domain.CampaignWindow{}, today: today, expected: CodeMissingWindow},
		{name: "inverted", window: window(t, "2024-03-20", "2024-03-11"), today: today, expected: CodeInvertedWindow},
		{name: "starts yesterday", window: window(t, "2024-03-09", "2024-03-31"), today: today, expected: CodeWindowInPast},
		{name: "no clock", window: window(t, "2020-01-01", "2020-01-31"), today: domain.Date{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateWindow(tc.window, tc.today)
			if tc.expected == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, []Violation{{Code: tc.expected, Index: NoCard}}, violations(t, err))
		})
	}
}

func TestValidationErrorFormatting(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Violations: []Violation{
		{Code: CodeEmptyMaterialList, Index: NoCard},
		{Code: CodeMissingCode, Index: 2},
	}}

	assert.Equal(t,
		"validation failed: EMPTY_MATERIAL_LIST: at least one learning material must be filled in; "+
			"MISSING_CODE (card 3): card needs a content code",
		err.Error())
	assert.True(t, err.Has(CodeMissingCode))
	assert.False(t, err.Has(CodeOutOfWindow))

	first, ok := err.First()
	require.True(t, ok)
	assert.Equal(t, CodeEmptyMaterialList, first.Code)

	var nilErr *ValidationError
	assert.Equal(t, "validation failed", nilErr.Error())
	assert.False(t, nilErr.Has(CodeMissingCode))
	_, ok = nilErr.First()
	assert.False(t, ok)
}
