// Package pipeline runs one scoring pass end to end: load a result list,
// pick a course, analyse it under a format and write the report.
package pipeline

import (
	"io"
	"log/slog"
	"time"

	"github.com/roach88/fancyformats/internal/config"
	"github.com/roach88/fancyformats/internal/format"
	"github.com/roach88/fancyformats/internal/iofxml"
	"github.com/roach88/fancyformats/internal/report"
	"github.com/roach88/fancyformats/internal/results"
)

// Request describes a single scoring run.
type Request struct {
	InputPath   string
	CourseIndex int

	// Format, PenaltyType and PenaltyPer select the scoring rule. Empty
	// strings fall back to the config defaults; PenaltyPer is used as given.
	Format      string
	PenaltyType string
	PenaltyPer  int

	// OutputPath is where the CSV report is written. When empty the report
	// goes to Output instead, and is skipped if Output is nil too.
	OutputPath string
	Output     io.Writer
}

// Summary reports what a run produced.
type Summary struct {
	EventName  string       `json:"event"`
	CourseName string       `json:"course"`
	Format     string       `json:"format"`
	RowCount   int          `json:"rows"`
	OutputPath string       `json:"output,omitempty"`
	Rows       []format.Row `json:"results"`
}

// Option configures a run.
type Option func(*runner)

// WithLogger sets the run logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *runner) {
		r.log = logger
	}
}

// WithClock sets the clock used to derive competitor ages.
func WithClock(now func() time.Time) Option {
	return func(r *runner) {
		r.now = now
	}
}

type runner struct {
	log *slog.Logger
	now func() time.Time
}

// RequestFromConfig builds a request from a validated config.
func RequestFromConfig(cfg config.Config, input string, course int) Request {
	return Request{
		InputPath:   input,
		CourseIndex: course,
		Format:      cfg.Format,
		PenaltyType: cfg.PenaltyType,
		PenaltyPer:  cfg.PenaltyPer,
	}
}

// Process loads req.InputPath, scores the selected course and writes the
// report. Errors carry a results kind:
//   - ErrConfig for an unknown format, penalty type or a negative penalty
//   - ErrNotFound / ErrFormat from loading the result list
//   - ErrValidation for an out-of-range course index or an empty course
//   - ErrIO if the result list cannot be read or the report cannot be written
//
// Nothing is written unless scoring succeeds.
func Process(req Request, opts ...Option) (*Summary, error) {
	r := &runner{log: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	cfg := config.Default()
	if req.Format != "" {
		cfg.Format = req.Format
	}
	if req.PenaltyType != "" {
		cfg.PenaltyType = req.PenaltyType
	}
	cfg.PenaltyPer = req.PenaltyPer

	f, err := cfg.NewFormat()
	if err != nil {
		return nil, err
	}
	penalty, err := cfg.Penalty()
	if err != nil {
		return nil, err
	}

	event, err := iofxml.Load(req.InputPath, iofxml.WithClock(r.now), iofxml.WithLogger(r.log))
	if err != nil {
		return nil, err
	}

	course, err := event.Course(req.CourseIndex)
	if err != nil {
		return nil, err
	}
	r.log.Info("scoring course",
		"event", event.Name,
		"course", course.Name,
		"competitors", len(course.Results),
		"format", f.Name(),
		"penalty", cfg.Summary(),
	)

	rows, err := f.Analyse(*course)
	if err != nil {
		return nil, err
	}

	if err := r.write(req, penalty.Type, rows); err != nil {
		return nil, err
	}

	return &Summary{
		EventName:  event.Name,
		CourseName: course.Name,
		Format:     f.Name(),
		RowCount:   len(rows),
		OutputPath: req.OutputPath,
		Rows:       rows,
	}, nil
}

func (r *runner) write(req Request, t format.PenaltyType, rows []format.Row) error {
	switch {
	case req.OutputPath != "":
		if err := report.Export(req.OutputPath, t, rows); err != nil {
			return err
		}
		r.log.Info("report written", "path", req.OutputPath, "rows", len(rows))
	case req.Output != nil:
		return report.Write(req.Output, t, rows)
	default:
		r.log.Debug("no report destination, skipping export")
	}
	return nil
}

// LoadEvent loads the result list at path with the run options applied.
func LoadEvent(path string, opts ...Option) (*results.Event, error) {
	r := &runner{log: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return iofxml.Load(path, iofxml.WithClock(r.now), iofxml.WithLogger(r.log))
}
