package post

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/zostay/go-hentry/header"
)

type parser struct {
	maxHeaderLen int
	logger       *slog.Logger
}

func (pr *parser) clone() *parser {
	p := *pr
	return &p
}

var defaultParser = &parser{
	maxHeaderLen: 0,
	logger:       nil,
}

// ParseOption refers to options that may be passed to the Parse function to
// modify how the parser works.
type ParseOption func(pr *parser)

// WithMaxHeaderLength is a ParseOption that limits how many bytes the header
// may take up. Parse fails with header.ErrLargeHeader when the limit is
// passed. The default, or any value less than or equal to 0, means no limit.
func WithMaxHeaderLength(n int) ParseOption {
	return func(pr *parser) { pr.maxHeaderLen = n }
}

// WithLogger is a ParseOption that sends debug records about ignored header
// lines to the given logger. Nothing is logged by default.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(pr *parser) { pr.logger = logger }
}

func (pr *parser) debug(msg string, args ...any) {
	if pr.logger != nil {
		pr.logger.Debug(msg, args...)
	}
}

// Parse reads a whole document from r and builds a post from it.
//
// The header is read a line at a time until the first line that is exactly
// "\n". Title, Slug, Date, and Tags fields set the matching values. Other
// fields and lines without a colon are ignored. Everything after the blank
// line is read verbatim to the end of r and becomes the content. If r runs out
// before a blank line is found, the document has no content and Parse fails
// with a *MissingFieldError, unless an earlier required field is missing.
//
// Read errors are returned as is.
func Parse(r io.Reader, opts ...ParseOption) (*Post, error) {
	pr := defaultParser.clone()
	for _, opt := range opts {
		opt(pr)
	}

	br, isBuffered := r.(*bufio.Reader)
	if !isBuffered {
		br = bufio.NewReader(r)
	}

	h, err := header.Parse(br, header.WithMaxLength(pr.maxHeaderLen))
	if err != nil {
		return nil, err
	}

	for _, s := range h.Skipped() {
		pr.debug("ignoring header line without a colon", "line", s.Number)
	}

	b := &Builder{}
	for i, f := range h.Fields() {
		if !b.ApplyField(f.Name(), f.Body()) {
			pr.debug("ignoring unrecognized header field", "line", h.LineNumber(i), "name", f.Name())
		}
	}

	if h.Terminated() {
		body, err := io.ReadAll(br)
		if err != nil {
			return nil, err
		}
		b.SetContent(string(body))
	} else {
		pr.debug("document has no blank line after the header")
	}

	return b.Build()
}
