package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wxr2md"
)

// Ensure LoggingPostWriter implements wxr2md.PostWriter.
var _ wxr2md.PostWriter = (*LoggingPostWriter)(nil)

// LoggingPostWriter wraps a PostWriter with debug logging.
type LoggingPostWriter struct {
	next   wxr2md.PostWriter
	logger *slog.Logger
}

// NewLoggingPostWriter creates a new LoggingPostWriter.
func NewLoggingPostWriter(next wxr2md.PostWriter, logger *slog.Logger) *LoggingPostWriter {
	return &LoggingPostWriter{next: next, logger: logger}
}

// Prepare delegates to the wrapped writer and logs the operation.
func (w *LoggingPostWriter) Prepare() (err error) {
	defer func() {
		w.logger.Info("prepare output directories", "err", err)
	}()
	return w.next.Prepare()
}

// WritePost delegates to the wrapped writer and logs the operation.
func (w *LoggingPostWriter) WritePost(ctx context.Context, post *wxr2md.Post) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write post",
			"id", post.ID,
			"type", post.Type,
			"draft", post.Draft,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePost(ctx, post)
}
