package wxr2md_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/wxr2md"
	"gopkg.in/yaml.v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPost() *wxr2md.Post {
	date := time.Date(2020, 1, 5, 10, 0, 0, 0, time.UTC)
	return &wxr2md.Post{
		ID:          "42",
		Title:       wxr2md.SafeYAMLValue("Cool: Stuff"),
		Name:        "cool-stuff",
		Author:      "Jamie Doe",
		Date:        date,
		DateStr:     `"2020-01-05 10:00:00"`,
		Modified:    date,
		ModifiedStr: `"2020-01-05 10:00:00"`,
		Categories:  []string{"Tech", "Life"},
		Tags:        []string{"foo", "bar"},
		Content:     "Some **bold** text.",
		Type:        wxr2md.TypePost,
	}
}

func TestPost_FrontMatter(t *testing.T) {
	t.Parallel()

	t.Run("renders all keys in fixed order", func(t *testing.T) {
		t.Parallel()

		got := testPost().FrontMatter()

		want := `---
id: 42
layout: post
title: 'Cool: Stuff'
author: Jamie Doe
date: "2020-01-05 10:00:00"
modified: "2020-01-05 10:00:00"
categories:
  - Tech
  - Life
tags:
  - foo
  - bar
---
`
		assert.Equal(t, want, got)
	})

	t.Run("omits categories and tags keys when empty", func(t *testing.T) {
		t.Parallel()

		post := testPost()
		post.Categories = nil
		post.Tags = nil

		got := post.FrontMatter()

		assert.NotContains(t, got, "categories:")
		assert.NotContains(t, got, "tags:")
	})

	t.Run("adds draft marker for drafts", func(t *testing.T) {
		t.Parallel()

		post := testPost()
		post.Draft = true

		got := post.FrontMatter()

		assert.Contains(t, got, "draft: true\n---\n")
	})

	t.Run("keeps date keys with empty values when dates are absent", func(t *testing.T) {
		t.Parallel()

		post := testPost()
		post.Date = time.Time{}
		post.DateStr = ""
		post.Modified = time.Time{}
		post.ModifiedStr = ""

		got := post.FrontMatter()

		assert.Contains(t, got, "date: \n")
		assert.Contains(t, got, "modified: \n")
	})

	t.Run("stays valid YAML", func(t *testing.T) {
		t.Parallel()

		fm := testPost().FrontMatter()
		inner := strings.TrimSuffix(strings.TrimPrefix(fm, "---\n"), "---\n")

		var m map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(inner), &m))

		assert.Equal(t, "Cool: Stuff", m["title"])
		assert.Equal(t, "Jamie Doe", m["author"])
		assert.Equal(t, "2020-01-05 10:00:00", m["date"])
		assert.Equal(t, []any{"Tech", "Life"}, m["categories"])
		assert.Equal(t, []any{"foo", "bar"}, m["tags"])
	})
}

func TestPost_Body(t *testing.T) {
	t.Parallel()

	t.Run("default body is content only", func(t *testing.T) {
		t.Parallel()

		got := testPost().Body(false, false)

		assert.Equal(t, "Some **bold** text.\n", got)
	})

	t.Run("optional title heading", func(t *testing.T) {
		t.Parallel()

		got := testPost().Body(true, false)

		assert.Equal(t, "# 'Cool: Stuff'\n\nSome **bold** text.\n", got)
	})

	t.Run("optional formatted date line", func(t *testing.T) {
		t.Parallel()

		got := testPost().Body(false, true)

		assert.Equal(t, "_Sun 05 Jan 2020, 10:00_\n\nSome **bold** text.\n", got)
	})

	t.Run("absent content renders nothing", func(t *testing.T) {
		t.Parallel()

		post := testPost()
		post.Content = ""

		assert.Equal(t, "", post.Body(false, false))
	})

	t.Run("absent date skips the date line", func(t *testing.T) {
		t.Parallel()

		post := testPost()
		post.Date = time.Time{}

		assert.Equal(t, "Some **bold** text.\n", post.Body(false, true))
	})
}

func TestPost_Markdown(t *testing.T) {
	t.Parallel()

	post := testPost()

	got := post.Markdown()

	assert.Equal(t, post.FrontMatter()+post.Body(false, false), got)
	assert.True(t, strings.HasPrefix(got, "---\n"))
	assert.Contains(t, got, "---\nSome **bold** text.\n")
}
