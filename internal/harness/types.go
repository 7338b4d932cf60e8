package harness

import "github.com/roach88/fancyformats/internal/format"

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if all expect clauses and assertions match.
	Pass bool `json:"pass"`

	// Outcomes holds the scored row for each competitor, in scenario order.
	// Used for assertions and golden comparison.
	Outcomes []format.Row `json:"outcomes"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Outcomes: []format.Row{},
		Errors:   []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Outcome returns the row for the named competitor, if present.
func (r *Result) Outcome(name string) (format.Row, bool) {
	for _, row := range r.Outcomes {
		if row.Name == name {
			return row, true
		}
	}
	return format.Row{}, false
}
