package main

import (
	"context"
	"io"

	"github.com/fwojciec/wxr2md"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Parser wxr2md.BlogParser

	// NewWriter constructs the output writer for a loaded blog.
	NewWriter func(outDir string, blog *wxr2md.Blog) wxr2md.PostWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging to stderr"`

	Create CreateCmd `cmd:"" help:"Convert a WXR export into Markdown files"`
	Stats  StatsCmd  `cmd:"" help:"Print summary statistics for a WXR export"`
}

// CreateCmd is the "create" subcommand.
type CreateCmd struct {
	XMLFile       string `arg:"" help:"Path to the WXR XML file"`
	OutDir        string `arg:"" optional:"" default:"./out" help:"Output directory"`
	LowercaseTags bool   `name:"lowercasetags" short:"l" help:"Use tag nicenames (slugs) instead of display text"`
	Concurrency   int    `short:"c" default:"4" help:"Concurrent file writes"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	XMLFile       string `arg:"" help:"Path to the WXR XML file"`
	LowercaseTags bool   `name:"lowercasetags" short:"l" help:"Use tag nicenames (slugs) instead of display text"`
}
