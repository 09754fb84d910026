package cmd

import (
	"github.com/spf13/cobra"

	"nocturne.dev/pkg/nocturne/internal/domain"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <source>",
		Short: "Display a mapping source as a tree",
		Long:  "Display every class, field and method of a mapping source with its deobfuscated name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := sourceDialect()
			if err != nil {
				return err
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Path: m.Path(args[0]), Dialect: dialect})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
