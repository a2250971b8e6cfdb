package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-hentry/internal/lint"
)

var errLintFailed = errors.New("document failed lint checks")

func newLintCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	lintCmd := &cobra.Command{
		Use:   "lint INPUT",
		Short: "Reports problems in a document without converting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, args[0], strict)
		},
	}

	lintCmd.Flags().BoolVar(&strict, "strict", false, "fail on warnings as well as errors")

	return lintCmd
}

// runLint prints every problem found in the document at path. It fails when a
// problem would stop conversion or, with strict, when there is any problem.
func runLint(cmd *cobra.Command, opts *rootOptions, path string, strict bool) error {
	in, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	opts.logger(cmd).Debug("linting document", "input", path)

	err = lint.NewLinter(in).Check()
	fs, failed := lint.Failed(err)
	if err != nil && !failed {
		return fmt.Errorf("unable to read %s: %w", path, err)
	}

	if !failed {
		return nil
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), fs.String())
	if fs.Fatal() || strict {
		return errLintFailed
	}
	return nil
}
