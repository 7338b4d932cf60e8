// Package format scores courses under fancy score formats.
//
// A Format turns a course into report rows. The only registered format is
// odds and evens: controls must be visited in two contiguous blocks, one of
// odd codes and one of even codes. A competitor may switch blocks once; each
// further switch flags the control where it happens and costs a penalty.
//
// Penalties are either points deducted from the score or seconds added to
// the time, at a fixed amount per flagged control:
//
//	f, _ := format.New(format.OddsEvensName, format.Penalty{Type: format.PenaltyPoints, Per: 10})
//	rows, err := f.Analyse(course)
//
// New formats are added as new Format implementations registered in
// format.go.
package format
