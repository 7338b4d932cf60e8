package harness

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/roach88/fancyformats/internal/format"
	"github.com/roach88/fancyformats/internal/results"
)

// Harness is the test execution engine.
// It scores a scenario's competitors with the format under test.
type Harness struct {
	format  format.Format
	penalty format.Penalty
	logger  *slog.Logger
}

// Option configures a harness run.
type Option func(*Harness)

// WithLogger sets the logger that receives per-competitor debug lines.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Build the format from the scenario's name and penalty
// 2. Score all competitors as one course
// 3. Check per-competitor expect clauses
// 4. Evaluate assertions
//
// An error is returned only when the scenario cannot be executed at all;
// mismatches are reported through Result.Errors.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	penalty := scenario.PenaltyConfig()
	f, err := format.New(scenario.FormatName(), penalty)
	if err != nil {
		return nil, fmt.Errorf("failed to build format: %w", err)
	}

	h := &Harness{
		format:  f,
		penalty: penalty,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}

	rows, err := h.format.Analyse(scenarioCourse(scenario))
	if err != nil {
		return nil, fmt.Errorf("failed to score competitors: %w", err)
	}

	result := NewResult()
	result.Outcomes = rows

	for i, c := range scenario.Competitors {
		if c.Expect == nil {
			continue
		}
		for _, msg := range checkExpect(c, rows[i]) {
			result.AddError(msg)
		}
		h.logger.Debug("competitor checked",
			"scenario", scenario.Name,
			"competitor", c.Name,
			"flagged", rows[i].Flagged,
			"final", rows[i].FinalValue,
		)
	}

	actx := &AssertionContext{
		Scenario: scenario,
		Penalty:  penalty,
	}
	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(errMsg)
	}

	return result, nil
}

// scenarioCourse converts the scenario competitors into a course.
func scenarioCourse(s *Scenario) results.Course {
	course := results.Course{
		Name:    s.Name,
		Results: make([]results.PersonResult, len(s.Competitors)),
	}
	for i, c := range s.Competitors {
		course.Results[i] = results.PersonResult{
			Name:            c.Name,
			Points:          c.Points,
			Seconds:         c.Seconds,
			ControlSequence: codes(c.ControlSequence),
			Status:          "OK",
			StatusOK:        true,
		}
	}
	return course
}

// codes renders integer control codes as they appear in result lists.
func codes(ns []int) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = strconv.Itoa(n)
	}
	return out
}

// checkExpect compares a scored row against the competitor's expect clause.
func checkExpect(c Competitor, row format.Row) []string {
	var errs []string
	exp := c.Expect

	if exp.Flagged != nil {
		want := codes(exp.Flagged)
		if !slices.Equal(want, row.Flagged) {
			errs = append(errs, fmt.Sprintf("competitor %q: flagged: expected %v, got %v", c.Name, want, row.Flagged))
		}
	}
	if exp.PenaltyCount != nil && *exp.PenaltyCount != row.PenaltyCount {
		errs = append(errs, fmt.Sprintf("competitor %q: penalty_count: expected %d, got %d", c.Name, *exp.PenaltyCount, row.PenaltyCount))
	}
	if exp.Penalty != "" && exp.Penalty != row.PenaltyDisplay {
		errs = append(errs, fmt.Sprintf("competitor %q: penalty: expected %q, got %q", c.Name, exp.Penalty, row.PenaltyDisplay))
	}
	if exp.Final != "" && exp.Final != row.FinalValue {
		errs = append(errs, fmt.Sprintf("competitor %q: final: expected %q, got %q", c.Name, exp.Final, row.FinalValue))
	}

	return errs
}
