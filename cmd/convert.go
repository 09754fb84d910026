package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nocturne.dev/pkg/nocturne/internal/adapter"
	"nocturne.dev/pkg/nocturne/internal/domain"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

var convertToFlag string
var convertOutputFlag string

const convertLongDescription = `Convert a mapping source to another dialect.

The result is written to --output, or to stdout when no output is given.
With --to pomf the output is a directory holding one file per top-level class.
Lines that cannot be parsed are reported and skipped.

` + dialectHelp

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <source>",
		Short: "Convert mappings between dialects",
		Long:  convertLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputDialect, err := sourceDialect()
			if err != nil {
				return err
			}

			outputDialect, err := adapter.ParseDialect(viper.GetString(exportDialectKey))
			if err != nil {
				return err
			}

			return workflow.Convert(cmd.Context(), domain.ConvertArgs{
				Input:         m.Path(args[0]),
				InputDialect:  inputDialect,
				Output:        m.Path(convertOutputFlag),
				OutputDialect: outputDialect,
				Stdout:        cmd.OutOrStdout(),
			})
		},
	}

	configureConvertFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func configureConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&convertToFlag, toFlagName, "t", viper.GetString(exportDialectKey), "dialect to write (srg, enigma, pomf, auto)")
	bindFlagToConfig(cmd.Flags().Lookup(toFlagName), exportDialectKey)
	cmd.Flags().StringVarP(&convertOutputFlag, outputFlagName, "o", "", "output file or directory (default: stdout)")
}
