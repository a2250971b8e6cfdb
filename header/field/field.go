package field

import (
	"bytes"
	"fmt"
)

// Blank is the one line that ends a header. Only a bare line feed counts. A
// line holding "\r\n" or spaces is an ordinary (colon-less) line.
const Blank = "\n"

// Line represents the unparsed content of a single header line, including its
// line break, if it had one.
type Line []byte

// IsBlank returns true if the line is the blank line that separates the header
// from the body.
func (l Line) IsBlank() bool {
	return string(l) == Blank
}

// Field is a single Key: value pair read from a header. The name is kept
// exactly as written. The body has surrounding whitespace trimmed.
type Field struct {
	name string
	body string
}

// New constructs a field from a name and a body. The body is stored as given.
func New(name, body string) *Field {
	return &Field{name, body}
}

// Name returns the name of the header field.
func (f *Field) Name() string {
	return f.name
}

// Body returns the value of the header field as a string.
func (f *Field) Body() string {
	return f.body
}

// String returns the complete header field as a string.
func (f *Field) String() string {
	return fmt.Sprintf("%s: %s", f.name, f.body)
}

// Parse splits a single header line at the first colon. Everything before the
// colon is the name, compared later without any case folding or trimming.
// Everything after it, with surrounding whitespace removed, is the body.
//
// A line that contains no colon is not a field and Parse returns nil.
func Parse(l Line) *Field {
	ix := bytes.IndexByte(l, ':')
	if ix < 0 {
		return nil
	}

	return &Field{
		name: string(l[:ix]),
		body: string(bytes.TrimSpace(l[ix+1:])),
	}
}
