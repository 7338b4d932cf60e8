package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fancyformats/internal/results"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{OddsEvensName}, Names())
}

func TestNew(t *testing.T) {
	f, err := New(OddsEvensName, DefaultPenalty)
	require.NoError(t, err)
	assert.Equal(t, OddsEvensName, f.Name())

	_, err = New("harris-relay", DefaultPenalty)
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrConfig))
	assert.Contains(t, err.Error(), "unknown format")

	_, err = New(OddsEvensName, Penalty{Type: PenaltyPoints, Per: -5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrConfig))
}

func TestOddsEvensFormat_Analyse(t *testing.T) {
	f, err := New(OddsEvensName, Penalty{Type: PenaltyPoints, Per: 10})
	require.NoError(t, err)

	course := results.Course{
		Name: "Long Score",
		Results: []results.PersonResult{
			alternating(),
			{Name: "Tunde Okafor", Points: 80, Seconds: 3305, ControlSequence: []string{"30", "32", "34", "41", "43"}, StatusOK: true},
			{Name: "Sam "},
		},
	}

	rows, err := f.Analyse(course)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Anna Lind", rows[0].Name)
	assert.Equal(t, "60", rows[0].FinalValue)
	assert.Equal(t, "Tunde Okafor", rows[1].Name)
	assert.Equal(t, "80", rows[1].FinalValue)
	assert.Equal(t, "Sam ", rows[2].Name)
	assert.Equal(t, 0, rows[2].PenaltyCount)
}

func TestOddsEvensFormat_EmptyCourse(t *testing.T) {
	f, err := New(OddsEvensName, DefaultPenalty)
	require.NoError(t, err)

	_, err = f.Analyse(results.Course{Name: "Short Score"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrValidation))
	assert.Contains(t, err.Error(), "no results found")
}

func TestOddsEvensFormat_BadCodeNamesCompetitor(t *testing.T) {
	f, err := New(OddsEvensName, DefaultPenalty)
	require.NoError(t, err)

	course := results.Course{
		Name: "Long",
		Results: []results.PersonResult{
			alternating(),
			{Name: "Kim Park", ControlSequence: []string{"31", "start"}},
		},
	}

	_, err = f.Analyse(course)
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrFormat))
	assert.Contains(t, err.Error(), "competitor 2 (Kim Park)")
}
