package gen

import (
	"log/slog"
	"runtime"
)

// DefaultHeader is the header comment of every generated file.
const DefaultHeader = "Code generated by tablegen. DO NOT EDIT."

// DefaultPackage is the package clause used when none is configured.
const DefaultPackage = "models"

// Pagination selects how the LIMIT and OFFSET placeholders of a list query
// are numbered.
type Pagination uint8

const (
	// PaginationSequential numbers LIMIT and OFFSET right after the last
	// emitted filter, so placeholders and binds always match.
	PaginationSequential Pagination = iota
	// PaginationLegacy numbers LIMIT and OFFSET one past the filter counter.
	// The slot after the last filter is never referenced.
	PaginationLegacy
)

// String returns the name of the numbering scheme.
func (p Pagination) String() string {
	switch p {
	case PaginationSequential:
		return "sequential"
	case PaginationLegacy:
		return "legacy"
	default:
		return "invalid"
	}
}

// Config holds the global configuration of a generation run.
type Config struct {
	// Package is the package clause of the generated files.
	Package string
	// Target is the output directory. An empty target means the files are
	// rendered to a writer instead of disk.
	Target string
	// Header is the comment placed at the top of every generated file.
	Header string
	// Pagination selects the numbering of the list pagination placeholders.
	Pagination Pagination
	// Workers bounds the number of tables rendered in parallel.
	Workers int
	// Logger receives progress records. Nil means slog.Default().
	Logger *slog.Logger
}

// PackageName returns the configured package clause or DefaultPackage.
func (c *Config) PackageName() string {
	if c == nil || c.Package == "" {
		return DefaultPackage
	}
	return c.Package
}

// HeaderComment returns the configured header or DefaultHeader.
func (c *Config) HeaderComment() string {
	if c == nil || c.Header == "" {
		return DefaultHeader
	}
	return c.Header
}

// WorkerCount returns the configured worker count or GOMAXPROCS.
func (c *Config) WorkerCount() int {
	if c == nil || c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// Log returns the configured logger or slog.Default().
func (c *Config) Log() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
