package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the file system the commands read from and write to.
var appFs afero.Fs = afero.NewOsFs()

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cloudx-cli",
		Short: "CloudX landing page tool",
		Long: `cloudx-cli renders and checks the CloudX landing page without running the server.

Available commands:
  render      Render the page to stdout, a file or a static site directory
  validate    Check a content override file
  version     Print the version number

Use "cloudx-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newValidateCmd(), newVersionCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
