package iofxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/fancyformats/internal/results"
)

// birthDateLayout is the xs:date form used by IOF BirthDate.
const birthDateLayout = "2006-01-02"

// Option configures a load.
type Option func(*loader)

// WithClock sets the source of "now" used to derive ages.
// Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *loader) {
		l.now = now
	}
}

// WithLogger sets the logger for skip diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *loader) {
		l.log = logger
	}
}

type loader struct {
	now func() time.Time
	log *slog.Logger
}

func newLoader(opts []Option) *loader {
	l := &loader{now: time.Now, log: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the result list at path and builds an Event.
//
// Errors:
//   - results.ErrNotFound if path does not reference an existing file
//   - results.ErrIO if the file exists but cannot be read
//   - results.ErrFormat if the document is malformed or not an IOF v3 ResultList
//   - results.ErrValidation if there is no event name or no named class
//
// The file is read fully and closed before parsing starts.
func Load(path string, opts ...Option) (*results.Event, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, results.NotFoundf("results file not found: %s", path)
	}
	if err != nil {
		return nil, results.WrapIO(fmt.Sprintf("accessing results file %s", path), err)
	}
	if info.IsDir() {
		return nil, results.NotFoundf("not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, results.WrapIO(fmt.Sprintf("reading results file %s", path), err)
	}

	return Parse(data, opts...)
}

// Parse builds an Event from an in-memory document.
func Parse(data []byte, opts ...Option) (*results.Event, error) {
	l := newLoader(opts)

	var doc xmlResultList
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader
	if err := dec.Decode(&doc); err != nil {
		return nil, results.Wrap(results.ErrFormat, "parsing result list", err)
	}
	if doc.XMLName.Space != Namespace {
		return nil, results.Formatf("root element %q is not in the IOF v3 namespace (got %q)", doc.XMLName.Local, doc.XMLName.Space)
	}

	return l.buildEvent(&doc)
}

func (l *loader) buildEvent(doc *xmlResultList) (*results.Event, error) {
	if doc.Event == nil || strings.TrimSpace(doc.Event.Name) == "" {
		return nil, results.Validationf("no event name found")
	}

	event := &results.Event{Name: clean(doc.Event.Name)}
	l.log.Debug("loading event", "name", event.Name, "class_results", len(doc.ClassResults))

	for i, cr := range doc.ClassResults {
		name := clean(cr.Class.Name)
		if name == "" {
			l.log.Debug("skipping class without a name", "index", i)
			continue
		}

		course := results.Course{
			Name:    name,
			Results: make([]results.PersonResult, 0, len(cr.PersonResults)),
		}
		for j := range cr.PersonResults {
			pr, err := l.buildPersonResult(&cr.PersonResults[j])
			if err != nil {
				return nil, fmt.Errorf("class %q: %w", name, err)
			}
			course.Results = append(course.Results, pr)
		}

		l.log.Debug("course loaded", "name", name, "results", len(course.Results))
		event.Courses = append(event.Courses, course)
	}

	if len(event.Courses) == 0 {
		return nil, results.Validationf("no courses found")
	}

	return event, nil
}

func (l *loader) buildPersonResult(x *xmlPersonResult) (results.PersonResult, error) {
	pr := results.PersonResult{
		Name: clean(x.Person.Name.Given) + " " + clean(x.Person.Name.Family),
		Club: clean(x.Organisation.Name),
	}

	age, err := l.age(x.Person.BirthDate)
	if err != nil {
		return pr, fmt.Errorf("competitor %q: %w", pr.Name, err)
	}
	pr.AgeClass = sexCode(x.Person.Sex) + strconv.Itoa(age)

	// Everything below comes from the Result block, if there is one.
	if len(x.Results) == 0 {
		return pr, nil
	}
	res := &x.Results[0]

	pr.Status = strings.TrimSpace(res.Status)
	pr.StatusOK = pr.Status == "OK"

	if len(res.Scores) > 0 {
		if pr.Points, err = wholeNumber("Score", res.Scores[0]); err != nil {
			return pr, fmt.Errorf("competitor %q: %w", pr.Name, err)
		}
	}
	if pr.Seconds, err = wholeNumber("Time", res.Time); err != nil {
		return pr, fmt.Errorf("competitor %q: %w", pr.Name, err)
	}

	pr.ControlSequence = make([]string, 0, len(res.SplitTimes))
	for k, st := range res.SplitTimes {
		code := strings.TrimSpace(st.ControlCode)
		if code == "" {
			l.log.Debug("skipping split time without control code", "competitor", pr.Name, "index", k)
			continue
		}
		if _, err := strconv.Atoi(code); err != nil {
			return pr, fmt.Errorf("competitor %q: %w", pr.Name,
				results.Formatf("control code %q is not an integer", code))
		}
		pr.ControlSequence = append(pr.ControlSequence, code)
	}

	return pr, nil
}

// age returns whole years between the birth year and the current year,
// or 0 when no birth date is given.
func (l *loader) age(birthDate string) (int, error) {
	s := strings.TrimSpace(birthDate)
	if s == "" {
		return 0, nil
	}
	// xs:date may carry a zone suffix ("1985-04-12Z", "1985-04-12+01:00").
	if len(s) > len(birthDateLayout) {
		switch s[len(birthDateLayout)] {
		case 'Z', '+', '-':
			s = s[:len(birthDateLayout)]
		}
	}
	dob, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return 0, results.Formatf("malformed birth date %q", birthDate)
	}
	return l.now().Year() - dob.Year(), nil
}

// sexCode maps the IOF sex attribute to the class prefix. 'F' is reported as 'W'.
func sexCode(sex string) string {
	sex = strings.TrimSpace(sex)
	if sex == "F" {
		return "W"
	}
	return sex
}

// wholeNumber parses an integer element. IOF types Score and Time as
// doubles, so decimals are accepted and truncated. Empty means 0.
func wholeNumber(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, results.Formatf("%s %q is not a number", field, s)
	}
	return int(math.Trunc(f)), nil
}

// clean trims surrounding whitespace and NFC-normalizes text content.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
