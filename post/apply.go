package post

import (
	"strings"

	"github.com/zostay/go-hentry/header"
)

// Header field names a Builder recognizes. Names are matched exactly,
// including case.
const (
	HeaderTitle = "Title"
	HeaderSlug  = "Slug"
	HeaderDate  = "Date"
	HeaderTags  = "Tags"
)

// Recognized returns true if ApplyField would use a field with this name.
func Recognized(name string) bool {
	switch name {
	case HeaderTitle, HeaderSlug, HeaderDate, HeaderTags:
		return true
	}
	return false
}

// SplitTags splits a Tags body on commas and trims each tag. Empty tags are
// kept, so "a,,b" yields three tags.
func SplitTags(body string) []string {
	tags := strings.Split(strings.TrimSpace(body), ",")
	for i, t := range tags {
		tags[i] = strings.TrimSpace(t)
	}
	return tags
}

// ApplyField sets the builder value a header field names and returns true. A
// Tags field replaces all categories set before it. A field with any other
// name is ignored and ApplyField returns false.
func (b *Builder) ApplyField(name, body string) bool {
	switch name {
	case HeaderTitle:
		b.SetName(body)
	case HeaderSlug:
		b.SetSlug(body)
	case HeaderDate:
		b.SetPublished(body)
	case HeaderTags:
		b.SetCategories(SplitTags(body))
	default:
		return false
	}
	return true
}

// ApplyHeader applies every field of h in order.
func (b *Builder) ApplyHeader(h *header.Header) {
	for _, f := range h.Fields() {
		b.ApplyField(f.Name(), f.Body())
	}
}
