// Package lint looks for things in a document that convert without error but
// are probably not what the author meant, along with the missing fields that
// would stop conversion.
package lint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zostay/go-hentry/header"
	"github.com/zostay/go-hentry/post"
)

type Severity int

const (
	Warning Severity = 0 + iota
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Fatal:
		return "error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Failure is a single problem. Line is 0 when the problem belongs to the
// document as a whole.
type Failure struct {
	Line     int
	Severity Severity
	Message  string
}

type Failures []Failure

func (fs Failures) String() string {
	buf := &strings.Builder{}
	for i, f := range fs {
		if i > 0 {
			_, _ = fmt.Fprint(buf, "\n")
		}
		if f.Line > 0 {
			_, _ = fmt.Fprintf(buf, " * Line %d: %s: %s", f.Line, f.Severity, f.Message)
		} else {
			_, _ = fmt.Fprintf(buf, " * Document: %s: %s", f.Severity, f.Message)
		}
	}
	return buf.String()
}

// Fatal returns true if any failure would stop the document from converting.
func (fs Failures) Fatal() bool {
	for _, f := range fs {
		if f.Severity == Fatal {
			return true
		}
	}
	return false
}

// Error is returned by Check when it finds anything at all.
type Error struct {
	Failures
}

func (e *Error) Error() string {
	return fmt.Sprintf("Document linter check failed:\n%s", e.Failures.String())
}

type Linter struct {
	r io.Reader
}

func NewLinter(r io.Reader) *Linter {
	return &Linter{r}
}

type checkStatus struct {
	Failures
}

func (s *checkStatus) Fail(lineNumber int, sev Severity, msg string) {
	s.Failures = append(s.Failures, Failure{lineNumber, sev, msg})
}

func (s *checkStatus) Failf(lineNumber int, sev Severity, f string, args ...any) {
	s.Fail(lineNumber, sev, fmt.Sprintf(f, args...))
}

// Check reads the whole document and returns an *Error listing every problem
// found, or nil if there are none. A read failure is returned as is.
func (l *Linter) Check() error {
	br := bufio.NewReader(l.r)
	h, err := header.Parse(br)
	if err != nil {
		return err
	}

	var body []byte
	if h.Terminated() {
		body, err = io.ReadAll(br)
		if err != nil {
			return err
		}
	}

	status := &checkStatus{}
	checkSkipped(h, status)
	checkFields(h, status)
	checkRequired(h, status)
	checkBody(h, body, status)

	if len(status.Failures) > 0 {
		return &Error{status.Failures}
	}
	return nil
}

func checkSkipped(h *header.Header, status *checkStatus) {
	for _, s := range h.Skipped() {
		if strings.TrimSpace(string(s.Line)) == "" {
			status.Fail(s.Number, Warning,
				"line looks blank but is not a bare line feed, so the header continues past it")
			continue
		}
		status.Fail(s.Number, Warning, "line has no colon and is ignored")
	}
}

func checkFields(h *header.Header, status *checkStatus) {
	last := map[string]int{}
	for i, f := range h.Fields() {
		n := h.LineNumber(i)

		if !post.Recognized(f.Name()) {
			if guess := normalizeName(f.Name()); post.Recognized(guess) {
				status.Failf(n, Warning, "header %q is ignored; did you mean %q?", f.Name(), guess)
			} else {
				status.Failf(n, Warning, "unrecognized header %q is ignored", f.Name())
			}
			continue
		}

		if prev, seen := last[f.Name()]; seen {
			status.Failf(n, Warning, "%s replaces the value set on line %d", f.Name(), prev)
		}
		last[f.Name()] = n

		switch f.Name() {
		case post.HeaderTitle, post.HeaderSlug:
			if f.Body() == "" {
				status.Failf(n, Warning, "%s is empty", f.Name())
			}
		case post.HeaderDate:
			if _, err := ParseTime(f.Body()); err != nil {
				status.Failf(n, Warning, "Date %q does not look like a date", f.Body())
			}
		case post.HeaderTags:
			for _, tag := range post.SplitTags(f.Body()) {
				if tag == "" {
					status.Fail(n, Warning, "Tags contains an empty tag")
					break
				}
			}
		}
	}
}

func checkRequired(h *header.Header, status *checkStatus) {
	for _, name := range []string{post.HeaderTitle, post.HeaderSlug} {
		if _, ok := h.Get(name); !ok {
			status.Failf(0, Fatal, "required header %s is missing", name)
		}
	}

	if !h.Terminated() {
		status.Fail(0, Fatal, "no blank line ends the header, so there is no content")
	}

	if _, ok := h.Get(post.HeaderDate); !ok {
		status.Failf(0, Fatal, "required header %s is missing", post.HeaderDate)
	}
}

func checkBody(h *header.Header, body []byte, status *checkStatus) {
	if h.Terminated() && strings.TrimSpace(string(body)) == "" {
		status.Fail(0, Warning, "content is empty")
	}
}

// ParseTime tries RFC 5322 dates first and then falls back on the many other
// formats dateparse knows.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// normalizeName guesses which header a misspelled name was meant to be by
// trimming it and putting it in title case.
func normalizeName(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}

// Failed unpacks the failures from an error returned by Check. The second
// value is false for any other kind of error.
func Failed(err error) (Failures, bool) {
	var lintErr *Error
	if errors.As(err, &lintErr) {
		return lintErr.Failures, true
	}
	return nil, false
}
