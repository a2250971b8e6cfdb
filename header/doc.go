// Package header reads the leading block of Key: value lines from a document.
// The block ends at the first blank line or at the end of input, whichever
// comes first. The reader is left positioned just after the blank line so the
// caller can consume the rest as the body.
//
// Parsing is permissive. Lines without a colon are skipped, and every named
// field is kept regardless of name, so deciding which fields mean something
// is left to the caller.
package header
