package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/wxr2md"
	"golang.org/x/sync/errgroup"
)

// Run executes the create command.
func (c *CreateCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.XMLFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot open %q: %v\n", c.XMLFile, err)
		return err
	}
	defer f.Close()

	blog, err := deps.Parser.Parse(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wxr2md.ErrorMessage(err))
		return err
	}

	writer := deps.NewWriter(c.OutDir, blog)
	if err := writer.Prepare(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot create output directories: %v\n", err)
		return err
	}

	// Posts render independently and never share an output file, so
	// writes can proceed in parallel.
	g, ctx := errgroup.WithContext(deps.Ctx)
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}
	for _, post := range blog.Posts {
		g.Go(func() error {
			return writer.WritePost(ctx, post)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing posts: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d files\n", len(blog.Posts))

	return nil
}
