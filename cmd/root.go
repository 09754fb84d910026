// Package cmd provides the root command and CLI setup for nocturne.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"nocturne.dev/pkg/nocturne/internal/adapter"
	"nocturne.dev/pkg/nocturne/internal/controller"
	"nocturne.dev/pkg/nocturne/internal/domain"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

var mappingIO adapter.MappingIOAdapter
var workflow domain.Workflow
var ui controller.UI

// dialectFlag is a root-level flag naming the dialect of the mapping sources.
var dialectFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	mappingIO = adapter.NewMappingIOAdapter(adapter.NewLocalMappingFSAdapter())
	workflow = domain.NewWorkflow(mappingIO, ui)
}

const dialectHelp = `Supported dialects:
  - srg      flat CL:/FD:/MD: records (*.srg)
  - enigma   indented CLASS/FIELD/METHOD tree
  - pomf     directory of enigma files, one per top-level class
  - auto     directories are pomf, *.srg is srg, anything else enigma`

const rootLongDescription = `Nocturne reads, merges and rewrites JVM name mappings: the tables that
translate obfuscated class, field and method names back into readable ones.

` + dialectHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nocturne",
		Short: "JVM name mapping toolkit",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&dialectFlag, dialectFlagName, "d",
			viper.GetString(mappingsDialectKey),
			"dialect of the mapping sources (auto, srg, enigma, pomf)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dialectFlagName), mappingsDialectKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// sourceDialect resolves the dialect of the mapping sources from flags, config and env.
func sourceDialect() (adapter.Dialect, error) {
	return adapter.ParseDialect(viper.GetString(mappingsDialectKey))
}
