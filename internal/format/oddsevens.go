package format

import (
	"strconv"

	"github.com/roach88/fancyformats/internal/results"
)

// ErrEmptySequence is returned when there are no controls to check.
var ErrEmptySequence = results.Validationf("empty control sequence")

// OddsEvens checks a control sequence against the odds and evens rule and
// returns the flagged controls in punching order.
//
// The parity of the first control sets the starting block, whether it is odd
// or even. The first change of parity is the one allowed switch. Every later
// change of parity flags the control at which it happens, and the tracked
// parity follows it, so k parity changes flag exactly k-1 controls.
// A stray block of the wrong parity therefore costs two flags: the punch
// that enters it and the punch that leaves it each count as a change.
//
// Returns ErrEmptySequence for an empty sequence and a format error for a
// code that is not an integer.
func OddsEvens(seq []string) ([]string, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	current, err := parity(seq[0])
	if err != nil {
		return nil, err
	}

	flagged := []string{}
	switched := false
	for _, code := range seq[1:] {
		p, err := parity(code)
		if err != nil {
			return nil, err
		}
		if p == current {
			continue
		}
		if switched {
			flagged = append(flagged, code)
		}
		switched = true
		current = p
	}

	return flagged, nil
}

// parity returns 1 for odd codes and 0 for even ones (0 is even).
func parity(code string) (int, error) {
	n, err := strconv.Atoi(code)
	if err != nil {
		return 0, results.Formatf("control code %q is not an integer", code)
	}
	if n%2 == 0 {
		return 0, nil
	}
	return 1, nil
}
