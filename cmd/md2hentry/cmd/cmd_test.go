package cmd_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-hentry/cmd/md2hentry/cmd"
	"github.com/zostay/go-hentry/post"
)

const goodDoc = `Title: Hello World
Slug: hello-world
Author: Jane
Date: 2021-06-01
Tags: Go, Blogging

Body text.
`

const goodJSON = `{"type":["h-entry"],"properties":{"name":["Hello World"],"mp-slug":["hello-world"],` +
	`"content":[{"markdown":"Body text.\n"}],"published":["2021-06-01"],"category":["go","blogging"]}}` + "\n"

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	c := cmd.New()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	c.SetOut(stdout)
	c.SetErr(stderr)
	c.SetIn(strings.NewReader(stdin))
	c.SetArgs(args)

	err := c.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvert_File(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "post.txt", goodDoc)
	out, errOut, err := run(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, goodJSON, out)
	assert.Empty(t, errOut)
}

func TestConvert_Stdin(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, goodDoc, "-")
	require.NoError(t, err)
	assert.Equal(t, goodJSON, out)
}

func TestConvert_MissingField(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "Title: t\nSlug: s\n\nbody\n", "-")
	assert.Empty(t, out)

	var mfErr *post.MissingFieldError
	require.ErrorAs(t, err, &mfErr)
	assert.Equal(t, post.FieldDate, mfErr.Field)
	assert.Contains(t, err.Error(), "Field 'Date' is missing. It is a required field to build a Post.")
}

func TestConvert_NoSuchFile(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "unable to open input")
}

func TestConvert_Args(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "")
	assert.Error(t, err)

	_, _, err = run(t, "", "a", "b")
	assert.Error(t, err)
}

func TestConvert_MaxHeader(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, goodDoc, "--max-header", "8", "-")
	assert.ErrorContains(t, err, "the header exceeds the maximum parse length")
}

func TestConvert_Verbose(t *testing.T) {
	t.Parallel()

	out, errOut, err := run(t, goodDoc, "-v", "-")
	require.NoError(t, err)
	assert.Equal(t, goodJSON, out)
	assert.Contains(t, errOut, "ignoring unrecognized header field")
	assert.Contains(t, errOut, "name=Author")
}

func TestLint(t *testing.T) {
	t.Parallel()

	clean := "Title: T\nSlug: s\nDate: 2021-06-01\n\nBody\n"
	out, _, err := run(t, clean, "lint", "-")
	require.NoError(t, err)
	assert.Empty(t, out)

	// warnings alone do not fail
	out, _, err = run(t, goodDoc, "lint", "-")
	require.NoError(t, err)
	assert.Equal(t, " * Line 3: warning: unrecognized header \"Author\" is ignored\n", out)

	_, _, err = run(t, goodDoc, "lint", "--strict", "-")
	assert.ErrorContains(t, err, "document failed lint checks")

	out, _, err = run(t, "Title: T\n", "lint", "-")
	assert.Error(t, err)
	assert.Contains(t, out, "required header Slug is missing")
}

func TestCheck(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, goodDoc, "check", "-")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	path := writeFile(t, "post.json", goodJSON)
	out, _, err = run(t, "", "check", "--json", path)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	pretty := strings.Replace(goodJSON, `"type":`, `"type": `, 1)
	out, _, err = run(t, pretty, "check", "--json", "-")
	assert.ErrorContains(t, err, "JSON output changed after a round trip")
	assert.Contains(t, out, "@@")

	_, _, err = run(t, "not json", "check", "--json", "-")
	assert.ErrorContains(t, err, "unable to round trip")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "md2hentry v"+cmd.Version+"\n", out)

	out, _, err = run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, cmd.Version)
}
