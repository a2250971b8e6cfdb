package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zostay/go-hentry/internal/roundtrip"
)

var errRoundTrip = errors.New("JSON output changed after a round trip")

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var isJSON bool

	checkCmd := &cobra.Command{
		Use:   "check INPUT",
		Short: "Verifies the JSON output survives a decode and encode unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0], isJSON)
		},
	}

	checkCmd.Flags().BoolVar(&isJSON, "json", false, "INPUT is h-entry JSON rather than a document")

	return checkCmd
}

// runCheck round trips the post from path and prints a patch if the bytes
// change.
func runCheck(cmd *cobra.Command, opts *rootOptions, path string, isJSON bool) error {
	var (
		res *roundtrip.Result
		err error
	)

	if isJSON {
		res, err = checkJSON(cmd, path)
	} else {
		p, perr := opts.parse(cmd, path)
		if perr != nil {
			return perr
		}
		res, err = roundtrip.Check(p)
	}

	if err != nil {
		return fmt.Errorf("unable to round trip %s: %w", path, err)
	}

	if !res.OK() {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), res.Diff())
		return errRoundTrip
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func checkJSON(cmd *cobra.Command, path string) (*roundtrip.Result, error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	return roundtrip.CheckJSON(data)
}
