// Package report writes scored course rows as CSV.
//
// Column layout is fixed:
//
//	name, class, club, time, score, _, penalty count, <penalty>, <final>, _, control sequence, flagged controls
//
// where _ is a blank spacer column and the penalty and final labels depend
// on the penalty type ("penalty points"/"FINAL SCORE" or
// "penalty seconds"/"FINAL TIME"). Control lists are joined with a single
// space.
package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/roach88/fancyformats/internal/format"
	"github.com/roach88/fancyformats/internal/results"
)

// ListSeparator joins control codes inside a single CSV field.
const ListSeparator = " "

// Header returns the header row for the given penalty type.
func Header(t format.PenaltyType) []string {
	return []string{
		"name",
		"class",
		"club",
		"time",
		"score",
		"",
		"penalty count",
		t.PenaltyLabel(),
		t.FinalLabel(),
		"",
		"control sequence",
		"flagged controls",
	}
}

// Record returns the CSV fields for one row, aligned with Header.
func Record(row format.Row) []string {
	return []string{
		row.Name,
		row.AgeClass,
		row.Club,
		row.Time,
		strconv.Itoa(row.Points),
		"",
		strconv.Itoa(row.PenaltyCount),
		row.PenaltyDisplay,
		row.FinalValue,
		"",
		strings.Join(row.ControlSequence, ListSeparator),
		strings.Join(row.Flagged, ListSeparator),
	}
}

// Write writes the header and one line per row to w.
func Write(w io.Writer, t format.PenaltyType, rows []format.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(t)); err != nil {
		return results.WrapIO("write report header", err)
	}
	for _, row := range rows {
		if err := cw.Write(Record(row)); err != nil {
			return results.WrapIO("write report row", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return results.WrapIO("flush report", err)
	}
	return nil
}

// Export creates or overwrites the file at path with the full report.
// The file is closed before Export returns. A partially written file is
// left in place on failure.
func Export(path string, t format.PenaltyType, rows []format.Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return results.WrapIO("create report", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = results.WrapIO("close report", closeErr)
		}
	}()

	return Write(f, t, rows)
}
