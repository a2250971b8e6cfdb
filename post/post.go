package post

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// TypeEntry is the type tag every Post carries.
const TypeEntry = "h-entry"

// Property names that Properties always writes. Extra properties using one of
// these names are dropped on output.
const (
	PropertyName      = "name"
	PropertySlug      = "mp-slug"
	PropertyContent   = "content"
	PropertyPublished = "published"
	PropertyCategory  = "category"
)

func isFixedProperty(name string) bool {
	switch name {
	case PropertyName, PropertySlug, PropertyContent, PropertyPublished, PropertyCategory:
		return true
	}
	return false
}

// Content is the body of a post. The text is carried verbatim and is never
// rendered.
type Content struct {
	Markdown string `json:"markdown"`
}

// Properties holds the values of a post. Every property is a list, even those
// that only ever hold one value.
type Properties struct {
	Name      []string  `json:"name"`
	Slug      []string  `json:"mp-slug"`
	Content   []Content `json:"content"`
	Published []string  `json:"published"`
	Category  []string  `json:"category"`

	// Extra holds any other properties. They are written at the same level as
	// the fixed properties above. Nothing in this module sets them, but they
	// survive a decode and encode.
	Extra map[string][]any `json:"-"`
}

// Post is an h-entry record.
type Post struct {
	Type       []string   `json:"type"`
	Properties Properties `json:"properties"`
}

// fixedProperties has the same layout as Properties but none of its methods,
// so it can be handed to encoding/json without recursing.
type fixedProperties Properties

// MarshalJSON writes the fixed properties in a stable order followed by the
// extra properties sorted by name, all in one object.
func (p Properties) MarshalJSON() ([]byte, error) {
	if p.Category == nil {
		p.Category = []string{}
	}

	fixed, err := marshal(fixedProperties(p))
	if err != nil {
		return nil, err
	}

	extra := make(map[string][]any, len(p.Extra))
	for name, values := range p.Extra {
		if isFixedProperty(name) {
			continue
		}
		extra[name] = values
	}

	if len(extra) == 0 {
		return fixed, nil
	}

	more, err := marshal(extra)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(fixed)+len(more))
	out = append(out, fixed[:len(fixed)-1]...)
	out = append(out, ',')
	out = append(out, more[1:]...)
	return out, nil
}

// UnmarshalJSON reads the fixed properties and gathers every other key into
// Extra. Numbers in extra properties are kept as json.Number so they are
// written back exactly as they were read.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var fixed fixedProperties
	if err := json.Unmarshal(data, &fixed); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	*p = Properties(fixed)
	p.Extra = nil
	for name, raw := range all {
		if isFixedProperty(name) {
			continue
		}

		var values []any
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&values); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}

		if p.Extra == nil {
			p.Extra = make(map[string][]any)
		}
		p.Extra[name] = values
	}

	return nil
}

// WriteTo writes the post as a single line of JSON followed by a line break.
// Characters such as <, >, and & are written as is rather than escaped.
func (p *Post) WriteTo(w io.Writer) (int64, error) {
	b, err := marshal(p)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(append(b, '\n'))
	return int64(n), err
}

// Decode reads a post previously written by WriteTo or any other JSON with the
// same shape.
func Decode(r io.Reader) (*Post, error) {
	p := &Post{}
	if err := json.NewDecoder(r).Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

// marshal is json.Marshal without HTML escaping.
func marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
