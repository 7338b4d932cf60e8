package pipeline

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fancyformats/internal/config"
	"github.com/roach88/fancyformats/internal/format"
	"github.com/roach88/fancyformats/internal/results"
	"github.com/roach88/fancyformats/internal/testutil"
)

const resultList = "testdata/ResultList1.xml"

func testOptions() []Option {
	return []Option{
		WithClock(testutil.InYear(2024).Now),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
}

func TestProcess_WritesReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")

	summary, err := Process(Request{
		InputPath:   resultList,
		CourseIndex: 0,
		PenaltyType: "points",
		PenaltyPer:  10,
		OutputPath:  out,
	}, testOptions()...)
	require.NoError(t, err)

	assert.Equal(t, "Autumn Night Score", summary.EventName)
	assert.Equal(t, "Long Score", summary.CourseName)
	assert.Equal(t, format.OddsEvensName, summary.Format)
	assert.Equal(t, 4, summary.RowCount)
	assert.Equal(t, out, summary.OutputPath)
	require.Len(t, summary.Rows, 4)
	assert.Equal(t, []string{"33", "34", "41", "42"}, summary.Rows[0].Flagged)
	assert.Equal(t, "60", summary.Rows[0].FinalValue)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "long_score_points", data)
}

func TestProcess_WritesToOutputWriter(t *testing.T) {
	var buf bytes.Buffer

	summary, err := Process(Request{
		InputPath:   resultList,
		PenaltyType: "seconds",
		PenaltyPer:  30,
		Output:      &buf,
	}, testOptions()...)
	require.NoError(t, err)

	assert.Empty(t, summary.OutputPath)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, summary.RowCount+1)
	assert.Contains(t, lines[0], "FINAL TIME")
	assert.Contains(t, lines[1], "+120,0:47:30")
}

func TestProcess_NoDestination(t *testing.T) {
	summary, err := Process(Request{InputPath: resultList, PenaltyPer: 10}, testOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.RowCount)
}

func TestProcess_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		kind error
		want string
	}{
		{
			name: "course index past the end",
			req:  Request{InputPath: resultList, CourseIndex: 2, PenaltyPer: 10},
			kind: results.ErrValidation,
			want: "course index 2 out of range",
		},
		{
			name: "negative course index",
			req:  Request{InputPath: resultList, CourseIndex: -1, PenaltyPer: 10},
			kind: results.ErrValidation,
			want: "out of range",
		},
		{
			name: "empty course",
			req:  Request{InputPath: resultList, CourseIndex: 1, PenaltyPer: 10},
			kind: results.ErrValidation,
			want: "no results found",
		},
		{
			name: "missing input",
			req:  Request{InputPath: "testdata/nope.xml", PenaltyPer: 10},
			kind: results.ErrNotFound,
			want: "nope.xml",
		},
		{
			name: "unknown penalty type",
			req:  Request{InputPath: resultList, PenaltyType: "minutes", PenaltyPer: 10},
			kind: results.ErrConfig,
			want: "minutes",
		},
		{
			name: "negative penalty",
			req:  Request{InputPath: resultList, PenaltyPer: -1},
			kind: results.ErrConfig,
			want: "negative",
		},
		{
			name: "unknown format",
			req:  Request{InputPath: resultList, Format: "harris-relay", PenaltyPer: 10},
			kind: results.ErrConfig,
			want: "harris-relay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Process(tt.req, testOptions()...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProcess_FailedRunWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")

	_, err := Process(Request{InputPath: resultList, CourseIndex: 1, PenaltyPer: 10, OutputPath: out}, testOptions()...)
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcess_UnwritableOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "report.csv")

	_, err := Process(Request{InputPath: resultList, PenaltyPer: 10, OutputPath: out}, testOptions()...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrIO))
}

func TestRequestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.PenaltyType = "seconds"
	cfg.PenaltyPer = 45

	req := RequestFromConfig(cfg, resultList, 0)
	assert.Equal(t, Request{
		InputPath:   resultList,
		Format:      format.OddsEvensName,
		PenaltyType: "seconds",
		PenaltyPer:  45,
	}, req)

	summary, err := Process(req, testOptions()...)
	require.NoError(t, err)
	assert.Equal(t, "+180", summary.Rows[0].PenaltyDisplay)
}

func TestLoadEvent(t *testing.T) {
	event, err := LoadEvent(resultList, testOptions()...)
	require.NoError(t, err)
	assert.Equal(t, []string{"Long Score", "Short Score"}, event.CourseNames())
}
