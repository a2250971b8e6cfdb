// Package roundtrip verifies that a post survives being written as JSON, read
// back, and written again without a single byte changing.
package roundtrip

import (
	"bytes"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zostay/go-hentry/post"
)

// Result holds the bytes before and after a round trip.
type Result struct {
	Before []byte
	After  []byte
}

// OK returns true when the two encodings are identical.
func (r *Result) OK() bool {
	return bytes.Equal(r.Before, r.After)
}

// Diff describes how After differs from Before as a patch in the textual
// format diffmatchpatch uses. It returns an empty string when OK is true.
func (r *Result) Diff() string {
	if r.OK() {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(r.Before), string(r.After), false)
	patches := dmp.PatchMake(string(r.Before), diffs)
	return dmp.PatchToText(patches)
}

// Check writes p, decodes what was written, and writes that again.
func Check(p *post.Post) (*Result, error) {
	before := &bytes.Buffer{}
	if _, err := p.WriteTo(before); err != nil {
		return nil, err
	}

	return CheckJSON(before.Bytes())
}

// CheckJSON decodes a post from data and writes it back out. The result
// compares data with the new encoding, so any JSON not written the way
// Post.WriteTo writes it, a single line ending in a line feed, will differ.
func CheckJSON(data []byte) (*Result, error) {
	p, err := post.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	after := &bytes.Buffer{}
	if _, err := p.WriteTo(after); err != nil {
		return nil, err
	}

	return &Result{Before: data, After: after.Bytes()}, nil
}
