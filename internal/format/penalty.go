package format

import (
	"strconv"

	"github.com/roach88/fancyformats/internal/results"
)

// PenaltyType selects how flagged controls are charged.
type PenaltyType string

const (
	// PenaltyPoints deducts points from the competitor's score.
	PenaltyPoints PenaltyType = "points"
	// PenaltySeconds adds seconds to the competitor's time.
	PenaltySeconds PenaltyType = "seconds"
)

// ValidPenaltyTypes lists the accepted penalty types.
var ValidPenaltyTypes = []PenaltyType{PenaltyPoints, PenaltySeconds}

// ParsePenaltyType converts a user-supplied name to a PenaltyType.
func ParsePenaltyType(s string) (PenaltyType, error) {
	for _, t := range ValidPenaltyTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", results.Configf("invalid penalty type %q: must be one of %v", s, ValidPenaltyTypes)
}

// PenaltyLabel is the column label for the penalty total.
func (t PenaltyType) PenaltyLabel() string {
	if t == PenaltySeconds {
		return "penalty seconds"
	}
	return "penalty points"
}

// FinalLabel is the column label for the adjusted result.
func (t PenaltyType) FinalLabel() string {
	if t == PenaltySeconds {
		return "FINAL TIME"
	}
	return "FINAL SCORE"
}

// Penalty is the scoring configuration: what to charge and how much per
// flagged control.
type Penalty struct {
	Type PenaltyType
	Per  int
}

// DefaultPenalty is 10 points per flagged control.
var DefaultPenalty = Penalty{Type: PenaltyPoints, Per: 10}

// Validate checks the penalty by direct field inspection.
func (p Penalty) Validate() error {
	if p.Type != PenaltyPoints && p.Type != PenaltySeconds {
		return results.Configf("invalid penalty type %q: must be one of %v", p.Type, ValidPenaltyTypes)
	}
	if p.Per < 0 {
		return results.Configf("penalty per control must not be negative, got %d", p.Per)
	}
	return nil
}

// Row is one competitor's line in the report.
type Row struct {
	Name            string      `json:"name"`
	AgeClass        string      `json:"class"`
	Club            string      `json:"club"`
	Time            string      `json:"time"`
	Points          int         `json:"score"`
	StatusOK        bool        `json:"status_ok"`
	PenaltyType     PenaltyType `json:"penalty_type"`
	PenaltyCount    int         `json:"penalty_count"`
	PenaltyDisplay  string      `json:"penalty"`
	FinalValue      string      `json:"final"`
	ControlSequence []string    `json:"control_sequence"`
	Flagged         []string    `json:"flagged"`
}

// Score applies the odds and evens rule and the penalty to one competitor.
//
// Competitors without punches (no Result block, or nothing punched) have no
// sequence to check and are scored with zero penalties.
//
// Points: the display is "-total" and the final value is points - total,
// which may go negative. Seconds: the display is "+total" and the final
// value is the formatted duration of seconds + total.
func Score(person results.PersonResult, penalty Penalty) (Row, error) {
	if err := penalty.Validate(); err != nil {
		return Row{}, err
	}

	flagged := []string{}
	if len(person.ControlSequence) > 0 {
		var err error
		flagged, err = OddsEvens(person.ControlSequence)
		if err != nil {
			return Row{}, err
		}
	}

	count := len(flagged)
	total := count * penalty.Per

	row := Row{
		Name:            person.Name,
		AgeClass:        person.AgeClass,
		Club:            person.Club,
		Time:            FormatDuration(person.Seconds),
		Points:          person.Points,
		StatusOK:        person.StatusOK,
		PenaltyType:     penalty.Type,
		PenaltyCount:    count,
		ControlSequence: append([]string{}, person.ControlSequence...),
		Flagged:         flagged,
	}

	switch penalty.Type {
	case PenaltyPoints:
		row.PenaltyDisplay = "-" + strconv.Itoa(total)
		row.FinalValue = strconv.Itoa(person.Points - total)
	case PenaltySeconds:
		row.PenaltyDisplay = "+" + strconv.Itoa(total)
		row.FinalValue = FormatDuration(person.Seconds + total)
	}

	return row, nil
}
