// Package cli implements the pagecount command line.
//
// The command prints exactly one line to stdout: the page count, or 0 when
// the file could not be read as a PDF. Failures add a single
// "Error reading PDF: ..." line on stderr and still exit with status 0, so
// callers must look at the printed value rather than the exit status.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdfpagecount/internal/output"
	"github.com/pyhub-apps/pdfpagecount/pkg/pdf"
)

// NewRootCmd builds the pagecount command
func NewRootCmd() *cobra.Command {
	var (
		password string
		debug    bool
	)

	cmd := &cobra.Command{
		Use:   "pagecount <file_path>",
		Short: "Print the number of pages in a PDF file",
		Long: `Print the number of pages in a PDF file.

Any failure to open or parse the file prints 0, with the reason on stderr.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := output.Configure(cmd.ErrOrStderr(), debug)
			Report(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0],
				pdf.WithPassword(password),
				pdf.WithLogger(logger),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password for encrypted documents")
	cmd.Flags().BoolVar(&debug, "debug", false, "trace parsing attempts on stderr")

	return cmd
}

// Execute runs the root command against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}
