package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/fancyformats/internal/format"
)

// OutcomeSnapshot is the golden form of one scored competitor.
type OutcomeSnapshot struct {
	Name         string   `json:"name"`
	Flagged      []string `json:"flagged"`
	PenaltyCount int      `json:"penalty_count"`
	Penalty      string   `json:"penalty"`
	Final        string   `json:"final"`
}

// Snapshot captures the scored outcome of a scenario execution.
type Snapshot struct {
	ScenarioName string            `json:"scenario_name"`
	Format       string            `json:"format"`
	PenaltyType  string            `json:"penalty_type"`
	PenaltyPer   int               `json:"penalty_per"`
	Outcomes     []OutcomeSnapshot `json:"outcomes"`
}

// NewSnapshot builds the snapshot for a scenario result.
func NewSnapshot(scenario *Scenario, result *Result) Snapshot {
	penalty := scenario.PenaltyConfig()
	snap := Snapshot{
		ScenarioName: scenario.Name,
		Format:       scenario.FormatName(),
		PenaltyType:  string(penalty.Type),
		PenaltyPer:   penalty.Per,
		Outcomes:     make([]OutcomeSnapshot, len(result.Outcomes)),
	}
	for i, row := range result.Outcomes {
		snap.Outcomes[i] = outcomeSnapshot(row)
	}
	return snap
}

func outcomeSnapshot(row format.Row) OutcomeSnapshot {
	flagged := row.Flagged
	if flagged == nil {
		flagged = []string{}
	}
	return OutcomeSnapshot{
		Name:         row.Name,
		Flagged:      flagged,
		PenaltyCount: row.PenaltyCount,
		Penalty:      row.PenaltyDisplay,
		Final:        row.FinalValue,
	}
}

// Marshal renders the snapshot as indented JSON with a trailing newline.
// Field order is fixed by the struct, so output is stable across runs.
func (s Snapshot) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RunWithGolden executes a scenario and compares the outcome against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the outcome doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	return AssertGolden(t, scenario, result)
}

// AssertGolden compares an already computed result against its golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := NewSnapshot(scenario, result).Marshal()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
