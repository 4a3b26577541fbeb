package mocks

import (
	"context"

	"github.com/phrazzld/scry-schedule/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockPreviewResolver is a mock of the draft's preview lookup for use with testify/mock
type MockPreviewResolver struct {
	mock.Mock
}

// ResolvePreview is a mock implementation of PreviewResolver.ResolvePreview
func (m *MockPreviewResolver) ResolvePreview(
	ctx context.Context,
	kind domain.MediaKind,
	code string,
) (string, error) {
	args := m.Called(ctx, kind, code)
	return args.String(0), args.Error(1)
}
