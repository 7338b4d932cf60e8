package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/fancyformats/internal/format"
)

// Scenario defines a conformance test scenario.
// Scenarios score a fixed field of competitors and assert on the outcome.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Format is the registry name of the format under test.
	// Defaults to odds-and-evens.
	Format string `yaml:"format,omitempty"`

	// Penalty configures the format. Defaults to 10 points per control.
	Penalty *PenaltySpec `yaml:"penalty,omitempty"`

	// Competitors are scored in order as a single course.
	Competitors []Competitor `yaml:"competitors"`

	// Assertions validate rule-level properties of the outcome.
	// Supported types: transitions, parity_symmetric, final_consistent, flagged_total
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// PenaltySpec is the YAML form of format.Penalty.
type PenaltySpec struct {
	Type string `yaml:"type"`
	Per  int    `yaml:"per"`
}

// Competitor is one scenario entry.
type Competitor struct {
	Name    string `yaml:"name"`
	Points  int    `yaml:"points,omitempty"`
	Seconds int    `yaml:"seconds,omitempty"`

	// ControlSequence lists control codes in punching order.
	ControlSequence []int `yaml:"control_sequence"`

	// Expect specifies the expected row values.
	// If nil, the competitor is only covered by assertions.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies expected row values.
// Only the fields that are set are checked.
type ExpectClause struct {
	// Flagged is the exact list of flagged controls. An empty list asserts
	// that nothing was flagged; omitting the key skips the check.
	Flagged []int `yaml:"flagged"`

	PenaltyCount *int   `yaml:"penalty_count,omitempty"`
	Penalty      string `yaml:"penalty,omitempty"`
	Final        string `yaml:"final,omitempty"`
}

// Assertion validates a property across competitors.
type Assertion struct {
	// Type specifies the assertion type:
	// - "transitions": k parity transitions flag k-1 controls
	// - "parity_symmetric": flipping every code's parity flags the same positions
	// - "final_consistent": final value follows from the penalty arithmetic
	// - "flagged_total": total flagged controls equals Count
	Type string `yaml:"type"`

	// Competitor restricts the assertion to one competitor by name.
	Competitor string `yaml:"competitor,omitempty"`

	// Count is the expected total (used by flagged_total).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertTransitions     = "transitions"
	AssertParitySymmetric = "parity_symmetric"
	AssertFinalConsistent = "final_consistent"
	AssertFlaggedTotal    = "flagged_total"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "competitor:" vs "competitors:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// FormatName returns the format under test, applying the default.
func (s *Scenario) FormatName() string {
	if s.Format == "" {
		return format.OddsEvensName
	}
	return s.Format
}

// PenaltyConfig returns the scenario penalty, applying the default.
func (s *Scenario) PenaltyConfig() format.Penalty {
	if s.Penalty == nil {
		return format.DefaultPenalty
	}
	return format.Penalty{Type: format.PenaltyType(s.Penalty.Type), Per: s.Penalty.Per}
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Competitors) == 0 {
		return fmt.Errorf("competitors list is required and must be non-empty")
	}

	if s.Penalty != nil {
		if err := s.PenaltyConfig().Validate(); err != nil {
			return fmt.Errorf("penalty: %w", err)
		}
	}

	seen := make(map[string]bool, len(s.Competitors))
	for i, c := range s.Competitors {
		if c.Name == "" {
			return fmt.Errorf("competitors[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("competitors[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.Expect != nil && c.Expect.PenaltyCount != nil && *c.Expect.PenaltyCount < 0 {
			return fmt.Errorf("competitors[%d].expect: penalty_count must be non-negative", i)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, seen); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, competitors map[string]bool) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTransitions, AssertParitySymmetric, AssertFinalConsistent:
	case AssertFlaggedTotal:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for flagged_total", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	if a.Competitor != "" && !competitors[a.Competitor] {
		return fmt.Errorf("assertions[%d]: unknown competitor %q", index, a.Competitor)
	}

	return nil
}
