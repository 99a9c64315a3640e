package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/wxr2md"
	"github.com/fwojciec/wxr2md/mock"
	wxrslog "github.com/fwojciec/wxr2md/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPostWriter_WritePost(t *testing.T) {
	t.Parallel()

	t.Run("logs post details and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PostWriter{
			WritePostFn: func(ctx context.Context, post *wxr2md.Post) error {
				return nil
			},
		}

		w := wxrslog.NewLoggingPostWriter(inner, logger)
		err := w.WritePost(context.Background(), &wxr2md.Post{ID: "42", Type: wxr2md.TypePost, Draft: true})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "write post")
		assert.Contains(t, output, "id=42")
		assert.Contains(t, output, "draft=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PostWriter{
			WritePostFn: func(ctx context.Context, post *wxr2md.Post) error {
				return errors.New("disk full")
			},
		}

		w := wxrslog.NewLoggingPostWriter(inner, logger)
		err := w.WritePost(context.Background(), &wxr2md.Post{ID: "42", Type: wxr2md.TypePost})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "converted", nil
			},
		}

		c := wxrslog.NewLoggingConverter(inner, logger)
		md, err := c.Convert("<p>hi</p>")

		require.NoError(t, err)
		assert.Equal(t, "converted", md)
		output := buf.String()
		assert.Contains(t, output, "html to markdown")
		assert.Contains(t, output, "in_bytes=9")
		assert.Contains(t, output, "out_bytes=9")
	})
}
