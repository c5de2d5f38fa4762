// Command tablegen generates Go CRUD code for PostgreSQL tables described in
// a YAML or JSON file.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tablegen",
		Short: "Generate Go CRUD code for PostgreSQL tables",
		Long: `tablegen reads table descriptions from a YAML or JSON file and generates,
for every table, an entity struct with its constructor, insert, update,
delete and get-by-key functions, a filtered and paginated list function,
and optional payload declarations.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(generateCmd(), inspectCmd(), versionCmd())
	return cmd
}

// newLogger returns the text logger of the CLI. Debug records are enabled
// with verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
