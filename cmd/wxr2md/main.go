package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wxr2md"
	"github.com/fwojciec/wxr2md/fs"
	"github.com/fwojciec/wxr2md/htmltomarkdown"
	wxrslog "github.com/fwojciec/wxr2md/slog"
	"github.com/fwojciec/wxr2md/wxr"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// NewWriter overrides output writer construction. Used by tests to
	// substitute a mock writer; nil selects the fs writer.
	NewWriter func(outDir string, blog *wxr2md.Blog) wxr2md.PostWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wxr2md"),
		kong.Description("Convert a WordPress WXR export into Markdown files with YAML front matter."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wxr2md --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Wire the parser with the options of the selected command
	var conv wxr2md.Converter = htmltomarkdown.NewConverter()
	if cli.Verbose {
		conv = wxrslog.NewLoggingConverter(conv, logger)
	}

	opts := wxr.Options{}
	switch selectedCommand(kongCtx) {
	case "create":
		opts.NicenameTags = cli.Create.LowercaseTags
	case "stats":
		opts.NicenameTags = cli.Stats.LowercaseTags
	}
	deps.Parser = wxr.NewParser(conv, opts)

	newWriter := m.NewWriter
	if newWriter == nil {
		newWriter = func(outDir string, blog *wxr2md.Blog) wxr2md.PostWriter {
			return fs.NewWriter(outDir, blog)
		}
	}
	deps.NewWriter = func(outDir string, blog *wxr2md.Blog) wxr2md.PostWriter {
		w := newWriter(outDir, blog)
		if cli.Verbose {
			w = wxrslog.NewLoggingPostWriter(w, logger)
		}
		return w
	}

	return kongCtx.Run(deps)
}

// selectedCommand returns the first word of the resolved Kong command,
// e.g. "create" for "create <xmlfile> <outdir>".
func selectedCommand(kongCtx *kong.Context) string {
	fields := strings.Fields(kongCtx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
