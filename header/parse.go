package header

import (
	"bufio"
	"errors"
	"io"

	"github.com/zostay/go-hentry/header/field"
)

// ErrLargeHeader is returned by Parse when the header is longer than the
// configured WithMaxLength option.
var ErrLargeHeader = errors.New("the header exceeds the maximum parse length")

type parser struct {
	maxLen int
}

func (pr *parser) clone() *parser {
	p := *pr
	return &p
}

var defaultParser = &parser{
	maxLen: 0,
}

// ParseOption refers to options that may be passed to the Parse function to
// modify how the parser works.
type ParseOption func(pr *parser)

// WithMaxLength is a ParseOption that sets the maximum number of bytes the
// header may occupy before Parse gives up with ErrLargeHeader. A value less
// than or equal to 0 means there is no maximum, which is the default.
func WithMaxLength(n int) ParseOption {
	return func(pr *parser) { pr.maxLen = n }
}

// Parse reads header lines from r one at a time until it reads a line that is
// exactly "\n" or reaches the end of input. Each line containing a colon is
// recorded as a field. Lines without a colon are recorded as skipped and have
// no other effect.
//
// On return, r is positioned at the first byte after the blank line, so the
// remainder of r is the body.
//
// If reading from r fails, the fields gathered so far are returned along with
// the error. The same is true of ErrLargeHeader.
func Parse(r *bufio.Reader, opts ...ParseOption) (*Header, error) {
	pr := defaultParser.clone()
	for _, opt := range opts {
		opt(pr)
	}

	h := &Header{}
	for number := 1; ; number++ {
		line, err := r.ReadBytes('\n')
		h.length += len(line)
		if pr.maxLen > 0 && h.length > pr.maxLen {
			return h, ErrLargeHeader
		}

		if len(line) > 0 {
			l := field.Line(line)
			if l.IsBlank() {
				h.terminated = true
				return h, nil
			}

			if f := field.Parse(l); f != nil {
				h.Add(f, number)
			} else {
				h.skipped = append(h.skipped, Skipped{number, l})
			}
		}

		if errors.Is(err, io.EOF) {
			return h, nil
		} else if err != nil {
			return h, err
		}
	}
}
