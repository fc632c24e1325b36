package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfrund/cloudx/internal/content"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Validate a content override file",
		Long: `Validate a YAML content override against the page catalog.

The file is applied on top of the built-in copy, exactly as the server does at
startup, and the result is checked. Without FILE the CONTENT_FILE environment
variable is used; when neither is set the built-in copy is checked.

Examples:
  cloudx-cli validate content.yaml
  CONTENT_FILE=/etc/cloudx/content.yaml cloudx-cli validate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := os.Getenv("CONTENT_FILE")
			if len(args) == 1 {
				path = args[0]
			}

			cat, err := content.Load(appFs, path)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
				return err
			}

			name := path
			if name == "" {
				name = "built-in content"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid (%d FAQ entries, %d deliverables)\n",
				name, len(cat.FAQ.Entries), len(cat.Deliverables.Items))
			return nil
		},
	}
}
