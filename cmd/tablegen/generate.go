package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/tablegen/compiler/gen"
	"github.com/syssam/tablegen/compiler/gen/sql"
	"github.com/syssam/tablegen/compiler/load"
)

// generateFlags holds the flags shared by generate and inspect.
type generateFlags struct {
	target  string
	pkg     string
	legacy  bool
	workers int
	verbose bool
}

// options returns the generator options selected by the flags.
func (f *generateFlags) options(logger *slog.Logger) []gen.Option {
	opts := []gen.Option{gen.WithLogger(logger)}
	if f.target != "" {
		opts = append(opts, gen.WithTarget(f.target))
	}
	if f.pkg != "" {
		opts = append(opts, gen.WithPackage(f.pkg))
	}
	if f.legacy {
		opts = append(opts, gen.WithPagination(gen.PaginationLegacy))
	}
	if f.workers != 0 {
		opts = append(opts, gen.WithWorkers(f.workers))
	}
	return opts
}

func generateCmd() *cobra.Command {
	var (
		flags generateFlags
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate Go code for the tables described in a file",
		Long: `Generate one Go file per table described in the given YAML or JSON file.

Without --target the generated sources are printed to stdout, each preceded
by a comment naming its file. With --watch the file is regenerated whenever
it changes, until interrupted.`,
		Example: `  tablegen generate schema.yaml -o ./models
  tablegen generate schema.yaml -o ./models -p store --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			logger := newLogger(cmd.ErrOrStderr(), flags.verbose)
			run := func() error {
				return runGenerate(cmd.Context(), cmd.OutOrStdout(), path, flags.options(logger))
			}
			if err := run(); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			if flags.target == "" {
				return errors.New("tablegen: --watch requires --target")
			}
			return watchFile(cmd.Context(), path, logger, run)
		},
	}
	cmd.Flags().StringVarP(&flags.target, "target", "o", "", "output directory (default: print to stdout)")
	cmd.Flags().StringVarP(&flags.pkg, "package", "p", "", "package name of the generated code (default: file package or models)")
	cmd.Flags().BoolVar(&flags.legacy, "legacy-pagination", false, "number LIMIT and OFFSET placeholders one past the filter counter")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "number of tables rendered in parallel (default: GOMAXPROCS)")
	cmd.Flags().BoolVar(&watch, "watch", false, "regenerate whenever the input file changes")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every written file")
	return cmd
}

// runGenerate loads the file at path and generates its tables. Sources are
// written to w when no target is configured.
func runGenerate(ctx context.Context, w io.Writer, path string, opts []gen.Option) error {
	g, err := loadGraph(path, opts)
	if err != nil {
		return err
	}
	if g.Config.Target == "" {
		return sql.WriteTo(ctx, g, w)
	}
	if err := sql.Generate(ctx, g); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %d tables from %s into %s\n",
		color.New(color.FgGreen).Sprint("generated"), len(g.Nodes), path, g.Config.Target)
	return nil
}

// loadGraph loads and validates the file at path and builds its graph.
func loadGraph(path string, opts []gen.Option) (*gen.Graph, error) {
	p, err := load.LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return gen.NewProjectGraph(cfg, p)
}
