// Package main implements schedulecheck, a command that validates a
// learning-material schedule payload and prints a JSON report.
//
// Usage:
//
//	schedulecheck [flags] [FILE]
//
// FILE holds a JSON schedule; when it is omitted or "-", stdin is read. The
// exit status is 0 for a valid schedule, 1 when violations were found and 2
// for usage, configuration or input errors.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/phrazzld/scry-schedule/internal/config"
	"github.com/phrazzld/scry-schedule/internal/domain"
	"github.com/phrazzld/scry-schedule/internal/domain/schedule"
	"github.com/phrazzld/scry-schedule/internal/platform/logger"
	"github.com/spf13/pflag"
)

// Exit codes
const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

// report is the JSON document written to stdout.
type report struct {
	Valid      bool             `json:"valid"`
	MediaKind  domain.MediaKind `json:"media_kind"`
	Violations []violationEntry `json:"violations"`
	Schedule   *domain.Schedule `json:"schedule,omitempty"`
}

type violationEntry struct {
	Code    schedule.ViolationCode `json:"code"`
	Index   int                    `json:"index"`
	Message string                 `json:"message"`
}

// options holds the parsed command line.
type options struct {
	configPath string
	normalize  bool
	collectAll bool
	kind       string
	today      string
	input      string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitValid
		}
		fmt.Fprintf(stderr, "schedulecheck: %v\n", err)
		return exitError
	}

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "schedulecheck: failed to load configuration: %v\n", err)
		return exitError
	}

	log, err := logger.Setup(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "schedulecheck: failed to set up logger: %v\n", err)
		return exitError
	}

	sched, err := readSchedule(opts.input, stdin)
	if err != nil {
		log.Error("failed to read schedule", "error", err, "input", opts.input)
		return exitError
	}

	if err := applyMediaKind(&sched, opts.kind, cfg.Schedule.MediaKind); err != nil {
		log.Error("invalid media kind", "error", err)
		return exitError
	}

	now, err := clock(opts.today)
	if err != nil {
		log.Error("invalid --today value", "error", err)
		return exitError
	}

	svc := schedule.NewServiceWithParams(
		schedule.NewParams(schedule.ParamsConfig{
			Now:        now,
			CollectAll: cfg.Schedule.CollectAll || opts.collectAll,
		}),
		log,
	)

	if opts.normalize {
		sched.Materials = svc.Normalize(sched.Materials, sched.Window)
	}

	out := report{MediaKind: sched.MediaKind, Violations: []violationEntry{}}
	if opts.normalize {
		out.Schedule = &sched
	}

	err = svc.ValidateSchedule(sched)
	var verr *schedule.ValidationError
	switch {
	case err == nil:
		out.Valid = true
	case errors.As(err, &verr):
		for _, v := range verr.Violations {
			out.Violations = append(out.Violations, violationEntry{Code: v.Code, Index: v.Index, Message: v.Message()})
		}
	default:
		log.Error("schedule validation failed", "error", err)
		return exitError
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error("failed to write report", "error", err)
		return exitError
	}

	log.Debug("schedule checked",
		slog.Bool("valid", out.Valid),
		slog.Int("violation_count", len(out.Violations)),
		slog.Int("material_count", len(sched.Materials)))

	if !out.Valid {
		return exitInvalid
	}
	return exitValid
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("schedulecheck", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to a config file (default: ./schedule.yaml if present)")
	fs.BoolVarP(&opts.normalize, "normalize", "n", false, "re-derive card intervals before validating and include the result")
	fs.BoolVar(&opts.collectAll, "all", false, "report every violation instead of the first")
	fs.StringVar(&opts.kind, "kind", "", "media kind overriding the payload and configuration")
	fs.StringVar(&opts.today, "today", "", "evaluate the window as of this day (YYYY-MM-DD)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch fs.NArg() {
	case 0:
		opts.input = "-"
	case 1:
		opts.input = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	return opts, nil
}

func readSchedule(input string, stdin io.Reader) (domain.Schedule, error) {
	var r io.Reader = stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return domain.Schedule{}, fmt.Errorf("failed to open %s: %w", input, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var sched domain.Schedule
	if err := json.NewDecoder(r).Decode(&sched); err != nil {
		return domain.Schedule{}, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return sched, nil
}

// applyMediaKind resolves the kind in order: flag, payload, configuration.
func applyMediaKind(sched *domain.Schedule, flagKind, configKind string) error {
	name := flagKind
	if name == "" {
		name = string(sched.MediaKind)
	}
	if name == "" {
		name = configKind
	}

	kind, err := domain.ParseMediaKind(name)
	if err != nil {
		return err
	}
	sched.MediaKind = kind
	return nil
}

func clock(today string) (func() time.Time, error) {
	if today == "" {
		return time.Now, nil
	}
	d, err := domain.ParseDate(today)
	if err != nil {
		return nil, err
	}
	t := d.Time()
	return func() time.Time { return t }, nil
}
