package format

import (
	"fmt"
	"sort"

	"github.com/roach88/fancyformats/internal/results"
)

// Format analyses a course and produces one report row per competitor.
type Format interface {
	// Name is the registry key, e.g. "odds-and-evens".
	Name() string

	// Analyse scores every competitor on the course in document order.
	// Fails if the course has no results.
	Analyse(course results.Course) ([]Row, error)
}

// Constructor builds a Format for a penalty configuration.
type Constructor func(Penalty) (Format, error)

// OddsEvensName is the registry key of the odds and evens format.
const OddsEvensName = "odds-and-evens"

var registry = map[string]Constructor{
	OddsEvensName: NewOddsEvens,
}

// Names returns the registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New looks up a format by name and builds it with the given penalty.
func New(name string, penalty Penalty) (Format, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, results.Configf("unknown format %q: must be one of %v", name, Names())
	}
	return ctor(penalty)
}

// OddsEvensFormat scores a course under the odds and evens rule.
type OddsEvensFormat struct {
	Penalty Penalty
}

// NewOddsEvens validates the penalty and returns the format.
func NewOddsEvens(penalty Penalty) (Format, error) {
	if err := penalty.Validate(); err != nil {
		return nil, err
	}
	return &OddsEvensFormat{Penalty: penalty}, nil
}

// Name implements Format.
func (f *OddsEvensFormat) Name() string { return OddsEvensName }

// Analyse implements Format.
func (f *OddsEvensFormat) Analyse(course results.Course) ([]Row, error) {
	if err := course.RequireNonEmpty(); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(course.Results))
	for i, person := range course.Results {
		row, err := Score(person, f.Penalty)
		if err != nil {
			return nil, fmt.Errorf("competitor %d (%s): %w", i+1, person.Name, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
