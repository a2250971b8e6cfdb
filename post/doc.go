// Package post turns a plain text document into an h-entry post.
//
// A document starts with a header of Key: value lines and ends the header with
// a blank line. Everything after that is the body. For example:
//
//	Title: Hello World
//	Slug: hello-world
//	Date: 2021-06-01
//	Tags: Go, Blogging
//
//	This is the *body* of the post.
//
// Parse reads such a document and returns a *Post, which is written out as
// JSON with WriteTo. For more control, a Builder can be filled in by hand or
// from a header.Header with ApplyHeader.
package post
