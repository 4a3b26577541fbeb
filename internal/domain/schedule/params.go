package schedule

import "time"

// Params defines the configurable behaviour of the schedule Service
type Params struct {
	// Now supplies the current instant; the campaign may not start before its UTC day.
	Now func() time.Time

	// CollectAll makes validation report every violation instead of the first.
	CollectAll bool
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	Now        func() time.Time
	CollectAll bool
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		Now:        time.Now,
		CollectAll: false,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.Now != nil {
		params.Now = config.Now
	}
	params.CollectAll = config.CollectAll

	return params
}
