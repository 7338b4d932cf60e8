package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fancyformats/internal/format"
	"github.com/roach88/fancyformats/internal/results"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "odds-and-evens", cfg.Format)
	assert.Equal(t, "points", cfg.PenaltyType)
	assert.Equal(t, 10, cfg.PenaltyPer)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "seconds.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{Format: "odds-and-evens", PenaltyType: "seconds", PenaltyPer: 30}, cfg)

	p, err := cfg.Penalty()
	require.NoError(t, err)
	assert.Equal(t, format.Penalty{Type: format.PenaltySeconds, Per: 30}, p)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "partial.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "odds-and-evens", cfg.Format)
	assert.Equal(t, "points", cfg.PenaltyType)
	assert.Equal(t, 25, cfg.PenaltyPer)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "typo.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrConfig))
	assert.Contains(t, err.Error(), "penalty_pre")
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrNotFound))
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative_penalty", "penalty_per: -5\n", "-5"},
		{"unknown_penalty_type", "penalty_type: minutes\n", "minutes"},
		{"unknown_format", "format: harris-relay\n", "harris-relay"},
		{"malformed_yaml", "penalty_per: [1, 2\n", "parse YAML"},
		{"wrong_type", "penalty_per: lots\n", "parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, results.ErrConfig), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_Direct(t *testing.T) {
	err := Config{Format: "odds-and-evens", PenaltyType: "seconds", PenaltyPer: -1}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrConfig))
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestSchema_ListsRegisteredFormats(t *testing.T) {
	s := Schema()
	for _, name := range format.Names() {
		assert.Contains(t, s, `"`+name+`"`)
	}
	assert.Contains(t, s, `"points" | "seconds"`)
}

func TestNewFormat(t *testing.T) {
	f, err := Default().NewFormat()
	require.NoError(t, err)
	assert.Equal(t, format.OddsEvensName, f.Name())

	_, err = Config{Format: "odds-and-evens", PenaltyType: "laps", PenaltyPer: 1}.NewFormat()
	require.Error(t, err)
	assert.True(t, errors.Is(err, results.ErrConfig))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "odds-and-evens (10 points per flagged control)", Default().Summary())
}
