package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

// SimpleUI implements UI using the cobra command's writers.
// Diagnostics go to the error stream so converted mappings can be piped.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayStats prints one row per loaded source, as a table or as YAML.
func (s *SimpleUI) DisplayStats(ctx context.Context, reports []m.SourceReport, format Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == FormatYAML {
		return writeStatsYAML(s.cmd.OutOrStdout(), reports)
	}

	s.printf("%s", renderStatsTable(reports))

	return nil
}

func writeStatsYAML(w io.Writer, reports []m.SourceReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(reports); err != nil {
		_ = enc.Close()
		return fmt.Errorf("encode stats: %w", err)
	}

	return enc.Close()
}

func renderStatsTable(reports []m.SourceReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Dialect", "Classes", "Inner", "Fields", "Methods", "Mapped", "Skipped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	var total m.Stats

	skipped := 0

	for _, report := range reports {
		table.Append([]string{
			string(report.Source),
			report.Dialect,
			strconv.Itoa(report.Stats.TopLevelClasses),
			strconv.Itoa(report.Stats.InnerClasses),
			strconv.Itoa(report.Stats.Fields),
			strconv.Itoa(report.Stats.Methods),
			strconv.Itoa(report.Stats.Mapped),
			strconv.Itoa(report.Skipped),
		})

		total.TopLevelClasses += report.Stats.TopLevelClasses
		total.InnerClasses += report.Stats.InnerClasses
		total.Fields += report.Stats.Fields
		total.Methods += report.Stats.Methods
		total.Mapped += report.Stats.Mapped
		skipped += report.Skipped
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Sources %d", len(reports)),
		"",
		strconv.Itoa(total.TopLevelClasses),
		strconv.Itoa(total.InnerClasses),
		strconv.Itoa(total.Fields),
		strconv.Itoa(total.Methods),
		strconv.Itoa(total.Mapped),
		strconv.Itoa(skipped),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplaySkipped lists the input lines an import ignored.
func (s *SimpleUI) DisplaySkipped(ctx context.Context, skipped []m.LineDiagnostic) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(skipped) == 0 {
		return nil
	}

	_, err := fmt.Fprintf(s.cmd.ErrOrStderr(), "%d line(s) skipped\n%s", len(skipped), renderSkippedTable(skipped))

	return err
}

func renderSkippedTable(skipped []m.LineDiagnostic) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Line", "Reason"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, d := range skipped {
		table.Append([]string{string(d.Source), strconv.Itoa(d.Line), skipReason(d.Err)})
	}

	table.Render()

	return tableBuffer.String()
}

func skipReason(err error) string {
	if err == nil {
		return unknownReasonLabel
	}

	return err.Error()
}

const unknownReasonLabel = "unknown"

// DisplayTree prints the rendered mapping tree under a title line.
func (s *SimpleUI) DisplayTree(ctx context.Context, title string, mappings *m.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", title)

	if tree := RenderTree(mappings); tree != "" {
		s.printf("%s\n", tree)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
