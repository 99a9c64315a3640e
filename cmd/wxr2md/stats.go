package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/wxr2md"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
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

	fmt.Fprintf(deps.Stdout, "Title: %s\n", blog.Title)
	fmt.Fprintf(deps.Stdout, "Description: %s\n", blog.Description)
	fmt.Fprintf(deps.Stdout, "URL: %s\n", blog.URL)
	fmt.Fprintf(deps.Stdout, "Number of posts found: %d\n", blog.NumPosts)
	fmt.Fprintf(deps.Stdout, "Number of pages found: %d\n", blog.NumPages)
	fmt.Fprintf(deps.Stdout, "Number of tags found: %d\n", blog.NumTags)
	fmt.Fprintf(deps.Stdout, "Number of categories found: %d\n", blog.NumCategories)

	return nil
}
