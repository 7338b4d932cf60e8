package results

import "fmt"

// Event is one competition read from a result list.
type Event struct {
	Name    string
	Courses []Course
}

// Course is a named class of competitors scored on the same control layout.
type Course struct {
	Name    string
	Results []PersonResult
}

// PersonResult is a single competitor's entry on a course.
type PersonResult struct {
	Name     string // given + " " + family
	AgeClass string // sex code ('F' becomes 'W') followed by age in years
	Club     string
	Points   int
	Seconds  int

	// ControlSequence holds control codes in punching order.
	// Empty when the competitor has no Result block.
	ControlSequence []string

	// Status is the raw result status, e.g. "OK" or "MissingPunch".
	// Empty when there is no Result block.
	Status   string
	StatusOK bool
}

// CourseNames returns the course names in document order.
func (e *Event) CourseNames() []string {
	names := make([]string, len(e.Courses))
	for i, c := range e.Courses {
		names[i] = c.Name
	}
	return names
}

// Course returns the course at index i.
// Returns a validation error if i is out of range.
func (e *Event) Course(i int) (*Course, error) {
	if i < 0 || i >= len(e.Courses) {
		return nil, Validationf("course index %d out of range (event has %d courses)", i, len(e.Courses))
	}
	return &e.Courses[i], nil
}

// RequireNonEmpty fails if the course has no results.
// Used as a precondition gate before scoring.
func (c *Course) RequireNonEmpty() error {
	if len(c.Results) == 0 {
		return &Error{Kind: ErrValidation, Msg: "no results found", Err: fmt.Errorf("course %q", c.Name)}
	}
	return nil
}
