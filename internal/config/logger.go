package config

import (
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// Logger returns a slog logger that formats through pterm and writes to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	pl := pterm.DefaultLogger.WithLevel(c.LogLevel).WithWriter(w)
	return slog.New(pterm.NewSlogHandler(pl))
}
