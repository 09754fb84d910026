// Package domain implements the mapping workflows driven by the CLI.
package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"nocturne.dev/pkg/nocturne/internal/adapter"
	"nocturne.dev/pkg/nocturne/internal/controller"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

// ConvertArgs contains the arguments for converting a mapping set between dialects.
type ConvertArgs struct {
	Input         m.Path
	InputDialect  adapter.Dialect
	Output        m.Path // empty writes to Stdout
	OutputDialect adapter.Dialect
	Stdout        io.Writer
}

// ListArgs contains the arguments for summarizing mapping sources.
type ListArgs struct {
	Paths   []m.Path
	Dialect adapter.Dialect
	Format  controller.Format
	Threads int
}

// ViewArgs contains the arguments for displaying one mapping tree.
type ViewArgs struct {
	Path    m.Path
	Dialect adapter.Dialect
}

// Workflow defines the operations exposed on the command line.
type Workflow interface {
	Convert(ctx context.Context, args ConvertArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.MappingIOAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(mappingIO adapter.MappingIOAdapter, ui controller.UI) Workflow {
	return &workflow{
		MappingIOAdapter: mappingIO,
		UI:               ui,
	}
}

func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result, dialect, err := w.load(ctx, args.InputDialect, args.Input)
	if err != nil {
		return err
	}

	target := outputDialect(args.OutputDialect, args.Output)

	if args.Output == "" {
		stdout := args.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}

		err = w.WriteTo(target, stdout, result.Context)
	} else {
		err = w.Write(target, args.Output, result.Context)
	}

	if err != nil {
		slog.Error("Failed to write mappings", "target", string(args.Output), "dialect", target.String(), "error", err)
		return fmt.Errorf("write %s mappings: %w", target, err)
	}

	slog.Info("Converted mappings",
		"source", string(args.Input),
		"from", dialect.String(),
		"to", target.String(),
		"entries", result.Context.Stats().Total(),
		"skipped", len(result.Skipped),
	)

	return nil
}

// outputDialect resolves DialectAuto for an export target: stdout gets Enigma,
// files are detected by extension.
func outputDialect(dialect adapter.Dialect, output m.Path) adapter.Dialect {
	if dialect != adapter.DialectAuto {
		return dialect
	}

	if output == "" {
		return adapter.DialectEnigma
	}

	return adapter.DetectDialect(string(output), false)
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	reports := make([]m.SourceReport, len(args.Paths))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	// Each source gets its own Context; a Context is never shared between goroutines.
	for i, path := range args.Paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result, dialect, err := w.Read(args.Dialect, path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			reports[i] = m.SourceReport{
				Source:  path,
				Dialect: dialect.String(),
				Stats:   result.Context.Stats(),
				Skipped: len(result.Skipped),
			}

			slog.Debug("Loaded mapping source", "source", string(path), "dialect", dialect.String(), "skipped", len(result.Skipped))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to load mapping sources", "error", err)
		return err
	}

	if err := w.DisplayStats(ctx, reports, args.Format); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result, dialect, err := w.load(ctx, args.Dialect, args.Path)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (%s)", args.Path, dialect)
	if err := w.DisplayTree(ctx, title, result.Context); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// load reads one source and reports the lines it skipped.
func (w *workflow) load(ctx context.Context, dialect adapter.Dialect, path m.Path) (*m.ReadResult, adapter.Dialect, error) {
	result, used, err := w.Read(dialect, path)
	if err != nil {
		slog.Error("Failed to read mappings", "source", string(path), "dialect", dialect.String(), "error", err)
		return nil, used, fmt.Errorf("read %s: %w", path, err)
	}

	if err := w.DisplaySkipped(ctx, result.Skipped); err != nil {
		return nil, used, fmt.Errorf("display: %w", err)
	}

	return result, used, nil
}
