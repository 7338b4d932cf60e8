package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/fancyformats/internal/format"
	"github.com/roach88/fancyformats/internal/results"
)

// Schema returns the CUE definition a config must satisfy.
// The format disjunction is generated from the format registry.
func Schema() string {
	names := format.Names()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}

	types := make([]string, len(format.ValidPenaltyTypes))
	for i, t := range format.ValidPenaltyTypes {
		types[i] = strconv.Quote(string(t))
	}

	return fmt.Sprintf(`#Config: {
	format:       %s
	penalty_type: %s
	penalty_per:  int & >=0
}
`, strings.Join(quoted, " | "), strings.Join(types, " | "))
}

// Validate checks the config against Schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(Schema(), cue.Filename("config.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	v := ctx.Encode(c)
	if err := v.Err(); err != nil {
		return results.Wrap(results.ErrConfig, "encoding config", err)
	}

	if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		details := strings.TrimSpace(cueerrors.Details(err, nil))
		return results.Wrap(results.ErrConfig, "invalid configuration", errors.New(details))
	}
	return nil
}
