package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nocturne.dev/pkg/nocturne/internal/controller"
	"nocturne.dev/pkg/nocturne/internal/domain"
)

var listFormatFlag string
var listParallelFlag int

const listLongDescription = `Load one or more mapping sources and print how many classes, fields and
methods each one maps. Sources are loaded in parallel.

` + dialectHelp

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <sources...>",
		Short: "Summarize mapping sources",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := sourceDialect()
			if err != nil {
				return err
			}

			format, err := controller.ParseFormat(viper.GetString(listFormatKey))
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Paths:   parsePaths(args),
				Dialect: dialect,
				Format:  format,
				Threads: viper.GetInt(listParallelKey),
			})
		},
	}

	configureListFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func configureListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&listFormatFlag, formatFlagName, "f", viper.GetString(listFormatKey), "output format (table, yaml)")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), listFormatKey)
	cmd.Flags().IntVarP(&listParallelFlag, parallelFlagName, "p", viper.GetInt(listParallelKey), "number of sources loaded concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), listParallelKey)
}
