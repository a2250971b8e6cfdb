package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-hentry/post"
)

// Version is the release version of md2hentry. It is replaced at build time
// with -ldflags "-X github.com/zostay/go-hentry/cmd/md2hentry/cmd.Version=...".
var Version = "0.1.0"

type rootOptions struct {
	verbose   bool
	maxHeader int
}

// New builds the md2hentry command tree.
func New() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "md2hentry INPUT",
		Short: "Converts a plain text post into h-entry JSON",
		Long: `Reads a document made of Key: value header lines, a blank line, and a body,
then prints it as a single line of h-entry JSON. Title, Slug, and Date are
required, Tags is optional, and any other header is ignored. Use - as INPUT
to read standard input.`,
		Args:          cobra.ExactArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args[0])
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debugging details to standard error")
	rootCmd.Flags().IntVar(&opts.maxHeader, "max-header", 0, "fail if the header is longer than this many bytes (0 for no limit)")

	rootCmd.AddCommand(newLintCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the md2hentry command with the arguments of the process.
func Execute() error {
	return New().Execute()
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// openInput opens the named file, or standard input for "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open input: %w", err)
	}
	return f, nil
}

func (o *rootOptions) parse(cmd *cobra.Command, path string) (*post.Post, error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	logger := o.logger(cmd)
	logger.Debug("reading document", "input", path)

	p, err := post.Parse(in,
		post.WithLogger(logger),
		post.WithMaxHeaderLength(o.maxHeader),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to convert %s: %w", path, err)
	}

	return p, nil
}

// runConvert converts the document at path and prints the JSON.
func runConvert(cmd *cobra.Command, opts *rootOptions, path string) error {
	p, err := opts.parse(cmd, path)
	if err != nil {
		return err
	}

	if _, err := p.WriteTo(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
