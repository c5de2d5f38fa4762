package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/tablegen/compiler/gen"
)

func inspectCmd() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the SQL statements synthesized for every table",
		Long: `Print, for every table described in the given file, the insert, update,
delete and get statements with their bound fields, and the list query
assembled with no filters and with every filter present.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), flags.verbose)
			g, err := loadGraph(args[0], flags.options(logger))
			if err != nil {
				return err
			}
			for i, c := range g.Nodes {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := inspectTable(cmd.OutOrStdout(), c, g.Config); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.legacy, "legacy-pagination", false, "number LIMIT and OFFSET placeholders one past the filter counter")
	return cmd
}

var (
	heading = color.New(color.Bold)
	label   = color.New(color.FgCyan)
	warning = color.New(color.FgYellow)
)

// inspectTable prints the statements of one table.
func inspectTable(w io.Writer, c *gen.Catalog, cfg *gen.Config) error {
	a, err := gen.Build(c, cfg)
	if err != nil {
		return err
	}
	heading.Fprintf(w, "%s (%s)\n", c.Table, c.Entity)
	for _, s := range a.Statements.All() {
		binds := make([]string, len(s.Bound))
		for i, f := range s.Bound {
			binds[i] = f.Name
		}
		printStatement(w, string(s.Op), s.Text, binds, s.Check())
	}

	none := a.List.Assemble(nil, nil, nil)
	printStatement(w, "list", none.Text, none.Binds, checkList(none))

	values := make(map[string]any)
	for _, f := range a.List.Filters {
		values[f.Field.Name] = f.Field.Name
	}
	all := a.List.Assemble(values, nil, nil)
	printStatement(w, "list all", all.Text, all.Binds, checkList(all))
	return nil
}

func printStatement(w io.Writer, op, text string, binds []string, err error) {
	label.Fprintf(w, "  %-8s", op)
	fmt.Fprintf(w, " %s\n", text)
	fmt.Fprintf(w, "  %-8s binds: %s\n", "", strings.Join(binds, ", "))
	if err != nil {
		warning.Fprintf(w, "  %-8s %v\n", "", err)
	}
}

// checkList verifies the placeholders of an assembled list statement
// against its bind values.
func checkList(l *gen.ListStatement) error {
	s := &gen.Statement{Op: "list", Text: l.Text, Bound: make([]*gen.Field, len(l.Args))}
	return s.Check()
}
