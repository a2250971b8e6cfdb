package header

import (
	"github.com/zostay/go-hentry/header/field"
)

// Skipped records a header line that held no colon and so was not a field.
type Skipped struct {
	Number int        // 1-based line number within the document
	Line   field.Line // the line as read, including its line break
}

// Header is the ordered list of fields read from a document header.
type Header struct {
	fields     []*field.Field
	numbers    []int
	skipped    []Skipped
	terminated bool
	length     int
}

// Add appends a field to the end of the header. The line number is used only
// for reporting and may be 0 for a field that was not read from input.
func (h *Header) Add(f *field.Field, number int) {
	h.fields = append(h.fields, f)
	h.numbers = append(h.numbers, number)
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// GetField returns the nth field. It panics if n is out of range.
func (h *Header) GetField(n int) *field.Field {
	return h.fields[n]
}

// LineNumber returns the 1-based input line the nth field was read from.
func (h *Header) LineNumber(n int) int {
	return h.numbers[n]
}

// Fields returns the fields in the order they were read.
func (h *Header) Fields() []*field.Field {
	out := make([]*field.Field, len(h.fields))
	copy(out, h.fields)
	return out
}

// Get returns the body of the last field with the given name. The name must
// match exactly, including case. The second value is false when no field has
// that name.
func (h *Header) Get(name string) (string, bool) {
	for i := len(h.fields) - 1; i >= 0; i-- {
		if h.fields[i].Name() == name {
			return h.fields[i].Body(), true
		}
	}
	return "", false
}

// GetAll returns the bodies of every field with the given name in the order
// they were read.
func (h *Header) GetAll(name string) []string {
	var bodies []string
	for _, f := range h.fields {
		if f.Name() == name {
			bodies = append(bodies, f.Body())
		}
	}
	return bodies
}

// Names returns each distinct field name once, in order of first appearance.
func (h *Header) Names() []string {
	seen := make(map[string]struct{}, len(h.fields))
	names := make([]string, 0, len(h.fields))
	for _, f := range h.fields {
		if _, ok := seen[f.Name()]; ok {
			continue
		}
		seen[f.Name()] = struct{}{}
		names = append(names, f.Name())
	}
	return names
}

// Skipped returns the lines that were ignored because they held no colon.
func (h *Header) Skipped() []Skipped {
	return h.skipped
}

// Terminated returns true if the header ended at a blank line. It is false
// when the input ran out first, in which case the document has no body.
func (h *Header) Terminated() bool {
	return h.terminated
}

// Length returns the number of bytes consumed while reading the header,
// including the terminating blank line.
func (h *Header) Length() int {
	return h.length
}
