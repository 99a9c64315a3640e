// Package slog provides logging decorators for wxr2md services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wxr2md"
)

// Ensure LoggingConverter implements wxr2md.Converter.
var _ wxr2md.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   wxr2md.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next wxr2md.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(html string) (md string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("html to markdown",
			"in_bytes", len(html),
			"out_bytes", len(md),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html)
}
