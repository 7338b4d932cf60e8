package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fancyformats/internal/format"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/mixed_tail.yaml")
	require.NoError(t, err)

	assert.Equal(t, "mixed_tail", scenario.Name)
	assert.NotEmpty(t, scenario.Description)
	require.Len(t, scenario.Competitors, 2)
	assert.Equal(t, []int{31, 32, 33, 34, 41, 42}, scenario.Competitors[0].ControlSequence)
	require.NotNil(t, scenario.Competitors[0].Expect)
	assert.Equal(t, []int{33, 34, 41, 42}, scenario.Competitors[0].Expect.Flagged)
	assert.Equal(t, 4, *scenario.Competitors[0].Expect.PenaltyCount)
	assert.Len(t, scenario.Assertions, 4)
	assert.Equal(t, format.Penalty{Type: format.PenaltyPoints, Per: 10}, scenario.PenaltyConfig())
}

func TestLoadScenario_EmptyFlaggedIsNotNil(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/mixed_tail.yaml")
	require.NoError(t, err)

	// "flagged: []" asserts nothing flagged; an absent key skips the check.
	assert.NotNil(t, scenario.Competitors[1].Expect.Flagged)
	assert.Empty(t, scenario.Competitors[1].Expect.Flagged)
}

func TestLoadScenario_Defaults(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/no_controls.yaml")
	require.NoError(t, err)

	assert.Equal(t, format.OddsEvensName, scenario.FormatName())
	assert.Equal(t, format.DefaultPenalty, scenario.PenaltyConfig())
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "misspelled key"
competitor:
  - name: A
    control_sequence: [1]
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing name",
			content: "description: x\ncompetitors:\n  - name: A\n",
			want:    "name is required",
		},
		{
			name:    "missing description",
			content: "name: x\ncompetitors:\n  - name: A\n",
			want:    "description is required",
		},
		{
			name:    "no competitors",
			content: "name: x\ndescription: x\n",
			want:    "competitors list is required",
		},
		{
			name:    "competitor without name",
			content: "name: x\ndescription: x\ncompetitors:\n  - points: 5\n",
			want:    "competitors[0]: name is required",
		},
		{
			name:    "duplicate competitor",
			content: "name: x\ndescription: x\ncompetitors:\n  - name: A\n  - name: A\n",
			want:    `duplicate name "A"`,
		},
		{
			name:    "bad penalty type",
			content: "name: x\ndescription: x\npenalty:\n  type: minutes\n  per: 1\ncompetitors:\n  - name: A\n",
			want:    "penalty:",
		},
		{
			name:    "negative penalty",
			content: "name: x\ndescription: x\npenalty:\n  type: points\n  per: -1\ncompetitors:\n  - name: A\n",
			want:    "negative",
		},
		{
			name:    "negative expected count",
			content: "name: x\ndescription: x\ncompetitors:\n  - name: A\n    expect:\n      penalty_count: -2\n",
			want:    "penalty_count must be non-negative",
		},
		{
			name:    "unknown assertion",
			content: "name: x\ndescription: x\ncompetitors:\n  - name: A\nassertions:\n  - type: trace_order\n",
			want:    `unknown assertion type "trace_order"`,
		},
		{
			name:    "assertion without type",
			content: "name: x\ndescription: x\ncompetitors:\n  - name: A\nassertions:\n  - count: 1\n",
			want:    "assertions[0]: type is required",
		},
		{
			name:    "assertion on unknown competitor",
			content: "name: x\ndescription: x\ncompetitors:\n  - name: A\nassertions:\n  - type: transitions\n    competitor: B\n",
			want:    `unknown competitor "B"`,
		},
		{
			name:    "negative flagged total",
			content: "name: x\ndescription: x\ncompetitors:\n  - name: A\nassertions:\n  - type: flagged_total\n    count: -1\n",
			want:    "count must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScenario_AllTestdata(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			_, err := LoadScenario(file)
			assert.NoError(t, err)
		})
	}
}
