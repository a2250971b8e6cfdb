package cmd

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of md2hentry",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
}

// runVersion prints the version. It fails if Version is not a semantic
// version, which means the binary was built with a bad -ldflags value.
func runVersion(cmd *cobra.Command, _ []string) error {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("md2hentry was built with a bad version %q: %w", Version, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "md2hentry v%s\n", v)
	if v.PreRelease != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "This is a pre-release build.")
	}
	return nil
}
