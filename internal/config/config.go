package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Schedule ScheduleConfig `mapstructure:"schedule" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// ScheduleConfig contains the defaults applied when checking learning schedules.
type ScheduleConfig struct {
	// MediaKind is used when a schedule payload does not name its own kind.
	MediaKind string `mapstructure:"media_kind" validate:"required,oneof=VIDEO IMAGE PDF PPT"`
	// CollectAll reports every validation violation instead of only the first.
	CollectAll bool `mapstructure:"collect_all"`
}
