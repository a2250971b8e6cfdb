// Package hentry converts plain text posts into h-entry records in the JSON
// form Micropub servers accept.
//
// A post is written as a small header of Key: value lines, then a blank line,
// then the body:
//
//	Title: Hello World
//	Slug: hello-world
//	Date: 2021-06-01
//	Tags: Go, Blogging
//
//	The body is carried through exactly as written.
//
// The work is split according to part of the document. The header package
// reads the header a line at a time and stops at the first blank line, leaving
// the reader positioned at the body. It keeps every field it finds and skips
// lines without a colon, but it assigns no meaning to any of them. The post
// package decides what the fields mean. Only Title, Slug, Date, and Tags are
// used, and anything else is ignored so documents can carry extra headers for
// other tools. A post.Builder collects the values, and Build checks that the
// title, slug, content, and date are all present before handing back a
// post.Post, reporting only the first one missing.
//
// The JSON output is one line. Each property is a list even when it holds a
// single value, as the microformats2 JSON format expects. Tags become
// lowercase categories. The date is passed through untouched.
//
// The md2hentry command in cmd/md2hentry wraps all of this. It also has lint
// and check subcommands for catching mistakes in documents and for making sure
// the JSON output is stable.
package hentry
