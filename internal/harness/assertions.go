package harness

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/fancyformats/internal/format"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type       string   // Assertion type for categorization
	Competitor string   // Competitor the failure was found on, if any
	Expected   string   // Human-readable expected outcome
	Actual     string   // Human-readable actual outcome
	Sequence   []string // Control sequence for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s", e.Type)
	if e.Competitor != "" {
		fmt.Fprintf(&buf, " (%s)", e.Competitor)
	}
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Sequence) > 0 {
		fmt.Fprintf(&buf, "  Sequence: %s\n", strings.Join(e.Sequence, " "))
	}

	return buf.String()
}

// AssertionContext provides context for evaluating assertions.
type AssertionContext struct {
	Scenario *Scenario
	Penalty  format.Penalty
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
// Outcomes are matched to scenario competitors by position.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		if actx == nil || actx.Scenario == nil {
			errors = append(errors, fmt.Sprintf("assertion[%d]: %s requires scenario context", i, assertion.Type))
			continue
		}
		if len(result.Outcomes) != len(actx.Scenario.Competitors) {
			errors = append(errors, fmt.Sprintf("assertion[%d]: %d outcomes for %d competitors",
				i, len(result.Outcomes), len(actx.Scenario.Competitors)))
			continue
		}

		switch assertion.Type {
		case AssertTransitions:
			err = forEachOutcome(result, assertion, actx, assertTransitions)
		case AssertParitySymmetric:
			err = forEachOutcome(result, assertion, actx, assertParitySymmetric)
		case AssertFinalConsistent:
			err = forEachOutcome(result, assertion, actx, assertFinalConsistent)
		case AssertFlaggedTotal:
			err = assertFlaggedTotal(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}

type outcomeCheck func(c Competitor, row format.Row, actx *AssertionContext) error

// forEachOutcome applies check to every selected competitor and stops at the
// first failure.
func forEachOutcome(result *Result, assertion Assertion, actx *AssertionContext, check outcomeCheck) error {
	for i, c := range actx.Scenario.Competitors {
		if assertion.Competitor != "" && assertion.Competitor != c.Name {
			continue
		}
		if err := check(c, result.Outcomes[i], actx); err != nil {
			return err
		}
	}
	return nil
}

// assertTransitions checks that k parity transitions flag k-1 controls.
func assertTransitions(c Competitor, row format.Row, _ *AssertionContext) error {
	want := max(transitions(c.ControlSequence)-1, 0)
	if row.PenaltyCount != want || len(row.Flagged) != want {
		return &AssertionError{
			Type:       AssertTransitions,
			Competitor: c.Name,
			Expected:   fmt.Sprintf("%d flagged controls", want),
			Actual:     fmt.Sprintf("penalty count %d, flagged %v", row.PenaltyCount, row.Flagged),
			Sequence:   row.ControlSequence,
		}
	}
	return nil
}

// transitions counts adjacent pairs whose parity differs.
func transitions(seq []int) int {
	n := 0
	for i := 1; i < len(seq); i++ {
		if (seq[i]%2 != 0) != (seq[i-1]%2 != 0) {
			n++
		}
	}
	return n
}

// assertParitySymmetric re-runs the validator with every code shifted by one
// and checks that the flagged positions do not move.
func assertParitySymmetric(c Competitor, row format.Row, _ *AssertionContext) error {
	if len(c.ControlSequence) == 0 {
		return nil
	}

	shifted := make([]int, len(c.ControlSequence))
	for i, code := range c.ControlSequence {
		shifted[i] = code + 1
	}

	got, err := format.OddsEvens(codes(shifted))
	if err != nil {
		return fmt.Errorf("%s (%s): %w", AssertParitySymmetric, c.Name, err)
	}

	want := make([]string, len(row.Flagged))
	for i, f := range row.Flagged {
		n, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("%s (%s): flagged control %q: %w", AssertParitySymmetric, c.Name, f, err)
		}
		want[i] = strconv.Itoa(n + 1)
	}

	if !slices.Equal(want, got) {
		return &AssertionError{
			Type:       AssertParitySymmetric,
			Competitor: c.Name,
			Expected:   fmt.Sprintf("flipped sequence flags %v", want),
			Actual:     fmt.Sprintf("flipped sequence flags %v", got),
			Sequence:   row.ControlSequence,
		}
	}
	return nil
}

// assertFinalConsistent recomputes the penalty arithmetic from the inputs.
func assertFinalConsistent(c Competitor, row format.Row, actx *AssertionContext) error {
	total := row.PenaltyCount * actx.Penalty.Per

	var wantPenalty, wantFinal string
	switch actx.Penalty.Type {
	case format.PenaltySeconds:
		wantPenalty = "+" + strconv.Itoa(total)
		wantFinal = format.FormatDuration(c.Seconds + total)
	default:
		wantPenalty = "-" + strconv.Itoa(total)
		wantFinal = strconv.Itoa(c.Points - total)
	}

	if row.PenaltyDisplay != wantPenalty || row.FinalValue != wantFinal {
		return &AssertionError{
			Type:       AssertFinalConsistent,
			Competitor: c.Name,
			Expected:   fmt.Sprintf("penalty %s, final %s", wantPenalty, wantFinal),
			Actual:     fmt.Sprintf("penalty %s, final %s", row.PenaltyDisplay, row.FinalValue),
		}
	}
	return nil
}

// assertFlaggedTotal checks the number of flagged controls across the
// selected competitors.
func assertFlaggedTotal(result *Result, assertion Assertion) error {
	total := 0
	for _, row := range result.Outcomes {
		if assertion.Competitor != "" && assertion.Competitor != row.Name {
			continue
		}
		total += row.PenaltyCount
	}

	if total != assertion.Count {
		return &AssertionError{
			Type:       AssertFlaggedTotal,
			Competitor: assertion.Competitor,
			Expected:   fmt.Sprintf("%d flagged controls", assertion.Count),
			Actual:     fmt.Sprintf("%d flagged controls", total),
		}
	}
	return nil
}
