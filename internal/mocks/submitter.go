package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-schedule/internal/domain"
)

// MockSubmitter records submitted schedules for testing
type MockSubmitter struct {
	// Custom behavior function
	SubmitScheduleFn func(ctx context.Context, s domain.Schedule) error

	// Default response value
	Err error

	// Call tracking for verification
	mu        sync.Mutex
	schedules []domain.Schedule
}

// SubmitSchedule implements the Submitter interface
func (m *MockSubmitter) SubmitSchedule(ctx context.Context, s domain.Schedule) error {
	m.mu.Lock()
	m.schedules = append(m.schedules, s.Clone())
	m.mu.Unlock()

	if m.SubmitScheduleFn != nil {
		return m.SubmitScheduleFn(ctx, s)
	}
	return m.Err
}

// Calls returns the number of times SubmitSchedule was called
func (m *MockSubmitter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.schedules)
}

// Submitted returns copies of the schedules received, in call order
func (m *MockSubmitter) Submitted() []domain.Schedule {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Schedule, len(m.schedules))
	for i, s := range m.schedules {
		out[i] = s.Clone()
	}
	return out
}
