package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix scopes every environment variable, e.g. GWSWITCH_COMMAND_TIMEOUT.
const Prefix = "GWSWITCH"

type Settings struct {
	// Health gate
	RequiredServices []string `envconfig:"REQUIRED_SERVICES" default:"KzoneClient,KzoneSyncService"`

	// Subprocesses; zero leaves commands unbounded.
	CommandTimeout time.Duration `envconfig:"COMMAND_TIMEOUT" default:"30s"`

	// Synthetic progress sequence
	ProgressStart int           `envconfig:"PROGRESS_START" default:"0"`
	ProgressEnd   int           `envconfig:"PROGRESS_END" default:"240"`
	ProgressDelay time.Duration `envconfig:"PROGRESS_DELAY" default:"25ms"`

	// Session exit policy
	ExitAfterSwitch bool          `envconfig:"EXIT_AFTER_SWITCH" default:"true"`
	ExitDelay       time.Duration `envconfig:"EXIT_DELAY" default:"500ms"`

	// Candidate file watching
	WatchConfig       bool          `envconfig:"WATCH_CONFIG" default:"true"`
	WatchPollInterval time.Duration `envconfig:"WATCH_POLL_INTERVAL" default:"30s"`

	LogCapacity int `envconfig:"LOG_CAPACITY" default:"256"`
}

// Load reads an optional .env file from the working directory and then the
// process environment. Real environment variables win over .env entries.
func Load(envFiles ...string) (Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return Settings{}, fmt.Errorf("load env file: %w", err)
	}

	var s Settings
	if err := envconfig.Process(Prefix, &s); err != nil {
		return Settings{}, fmt.Errorf("process environment: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	var errs []error
	if s.CommandTimeout < 0 {
		errs = append(errs, fmt.Errorf("COMMAND_TIMEOUT must not be negative, got %s", s.CommandTimeout))
	}
	if s.ProgressEnd < s.ProgressStart {
		errs = append(errs, fmt.Errorf("PROGRESS_END (%d) must not be below PROGRESS_START (%d)", s.ProgressEnd, s.ProgressStart))
	}
	if s.ProgressDelay < 0 {
		errs = append(errs, fmt.Errorf("PROGRESS_DELAY must not be negative, got %s", s.ProgressDelay))
	}
	if s.ExitDelay < 0 {
		errs = append(errs, fmt.Errorf("EXIT_DELAY must not be negative, got %s", s.ExitDelay))
	}
	if s.WatchPollInterval < 0 {
		errs = append(errs, fmt.Errorf("WATCH_POLL_INTERVAL must not be negative, got %s", s.WatchPollInterval))
	}
	if s.LogCapacity <= 0 {
		errs = append(errs, fmt.Errorf("LOG_CAPACITY must be positive, got %d", s.LogCapacity))
	}
	if len(s.RequiredServices) == 0 {
		errs = append(errs, errors.New("REQUIRED_SERVICES must name at least one service"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
