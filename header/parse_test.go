package header_test

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-hentry/header"
)

func TestParse(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader(
		"Title: Hello\nSlug: hello\njunk line\nAuthor: Jane\n\nBody\nTitle: not a header\n"))
	h, err := header.Parse(r)
	require.NoError(t, err)

	assert.True(t, h.Terminated())
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"Title", "Slug", "Author"}, h.Names())
	assert.Equal(t, 4, h.LineNumber(2))
	assert.Equal(t, len("Title: Hello\nSlug: hello\njunk line\nAuthor: Jane\n\n"), h.Length())

	title, ok := h.Get("Title")
	assert.True(t, ok)
	assert.Equal(t, "Hello", title)

	_, ok = h.Get("title")
	assert.False(t, ok)

	require.Len(t, h.Skipped(), 1)
	assert.Equal(t, 3, h.Skipped()[0].Number)
	assert.Equal(t, "junk line\n", string(h.Skipped()[0].Line))

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Body\nTitle: not a header\n", string(body))
}

func TestParse_LastWins(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("Tags: a\nTags: b, c\n\n"))
	h, err := header.Parse(r)
	require.NoError(t, err)

	tags, ok := h.Get("Tags")
	assert.True(t, ok)
	assert.Equal(t, "b, c", tags)
	assert.Equal(t, []string{"a", "b, c"}, h.GetAll("Tags"))
	assert.Equal(t, []string{"Tags"}, h.Names())
}

func TestParse_NoBlankLine(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("Title: Hello\nSlug: hello"))
	h, err := header.Parse(r)
	require.NoError(t, err)

	assert.False(t, h.Terminated())
	assert.Equal(t, 2, h.Len())
	slug, _ := h.Get("Slug")
	assert.Equal(t, "hello", slug)
}

func TestParse_CRLFIsNotBlank(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("Title: Hello\r\n\r\nSlug: s\n\nbody"))
	h, err := header.Parse(r)
	require.NoError(t, err)

	assert.True(t, h.Terminated())
	title, _ := h.Get("Title")
	assert.Equal(t, "Hello", title)
	slug, _ := h.Get("Slug")
	assert.Equal(t, "s", slug)
	assert.Len(t, h.Skipped(), 1)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	h, err := header.Parse(bufio.NewReader(strings.NewReader("")))
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Terminated())

	h, err = header.Parse(bufio.NewReader(strings.NewReader("\nbody")))
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
	assert.True(t, h.Terminated())
}

func TestParse_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := bufio.NewReader(io.MultiReader(
		strings.NewReader("Title: Hello\n"),
		iotest.ErrReader(boom),
	))

	h, err := header.Parse(r)
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, h)
	title, ok := h.Get("Title")
	assert.True(t, ok)
	assert.Equal(t, "Hello", title)
	assert.False(t, h.Terminated())
}

func TestParse_WithMaxLength(t *testing.T) {
	t.Parallel()

	input := "Title: Hello\nSlug: hello\n\nbody"

	_, err := header.Parse(bufio.NewReader(strings.NewReader(input)), header.WithMaxLength(10))
	assert.ErrorIs(t, err, header.ErrLargeHeader)

	h, err := header.Parse(bufio.NewReader(strings.NewReader(input)), header.WithMaxLength(len(input)))
	assert.NoError(t, err)
	assert.Equal(t, 2, h.Len())
}
