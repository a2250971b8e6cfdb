package post

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names used to report a required field that was never set. These match the
// header names a document uses for them, except Content, which comes from the
// body.
const (
	FieldTitle   = "Title"
	FieldSlug    = "Slug"
	FieldContent = "Content"
	FieldDate    = "Date"
)

// Errors returned by Builder.Build.
var (
	// ErrMissingField matches any *MissingFieldError with errors.Is.
	ErrMissingField = errors.New("required field is missing")

	// ErrConsumed is returned when Build is called on a Builder that has
	// already been built.
	ErrConsumed = errors.New("post builder has already been built")
)

// MissingFieldError is returned by Build when a required field was never set.
// Only the first missing field is named.
type MissingFieldError struct {
	Field string // one of FieldTitle, FieldSlug, FieldContent, or FieldDate
}

// Error returns the error message.
func (err *MissingFieldError) Error() string {
	return fmt.Sprintf("Field '%s' is missing. It is a required field to build a Post.", err.Field)
}

// Is makes errors.Is(err, ErrMissingField) true.
func (err *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Builder accumulates the values of a post. Setters may be called any number
// of times and the last value wins. Build is then called exactly once.
//
// The zero value is ready to use.
type Builder struct {
	name       *string
	slug       *string
	content    *string
	published  *string
	categories []string
	consumed   bool
}

// SetName sets the title of the post.
func (b *Builder) SetName(name string) {
	b.name = &name
}

// SetSlug sets the slug of the post.
func (b *Builder) SetSlug(slug string) {
	b.slug = &slug
}

// SetContent sets the body of the post. The text is kept exactly as given.
func (b *Builder) SetContent(content string) {
	b.content = &content
}

// SetPublished sets the publication date. It is stored as given and is not
// checked to be a date.
func (b *Builder) SetPublished(published string) {
	b.published = &published
}

// SetCategories replaces any categories set before.
func (b *Builder) SetCategories(categories []string) {
	b.categories = make([]string, len(categories))
	copy(b.categories, categories)
}

// Build checks that the title, slug, content, and published date have all been
// set, in that order, and returns a *MissingFieldError for the first one that
// has not. Otherwise, it returns the finished post with every category
// lowercased. Categories are optional.
//
// Build consumes the builder whether it succeeds or not. Calling it again
// returns ErrConsumed.
func (b *Builder) Build() (*Post, error) {
	if b.consumed {
		return nil, ErrConsumed
	}
	b.consumed = true

	switch {
	case b.name == nil:
		return nil, &MissingFieldError{FieldTitle}
	case b.slug == nil:
		return nil, &MissingFieldError{FieldSlug}
	case b.content == nil:
		return nil, &MissingFieldError{FieldContent}
	case b.published == nil:
		return nil, &MissingFieldError{FieldDate}
	}

	lower := cases.Lower(language.Und)
	categories := make([]string, len(b.categories))
	for i, c := range b.categories {
		categories[i] = lower.String(c)
	}

	return &Post{
		Type: []string{TypeEntry},
		Properties: Properties{
			Name:      []string{*b.name},
			Slug:      []string{*b.slug},
			Content:   []Content{{Markdown: *b.content}},
			Published: []string{*b.published},
			Category:  categories,
		},
	}, nil
}
