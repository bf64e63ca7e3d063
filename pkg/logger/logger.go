package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the output encoding of log records.
type Format string

const (
	// FormatJSON emits structured records for log aggregation.
	FormatJSON Format = "json"
	// FormatText emits human-readable records for local development.
	FormatText Format = "text"
)

// Config carries the environment-driven logger settings.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format Format `env:"LOG_FORMAT" envDefault:"json"`
}

// Option configures logger creation.
type Option func(*settings)

type settings struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// WithLevel overrides the minimum record level.
func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat overrides the output encoding.
func WithFormat(f Format) Option {
	return func(s *settings) {
		if f == FormatJSON || f == FormatText {
			s.format = f
		}
	}
}

// WithOutput sets a custom output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr attaches static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) { s.attrs = append(s.attrs, attrs...) }
}

// New builds a slog.Logger from the config, applying options on top.
func New(cfg Config, opts ...Option) *slog.Logger {
	s := &settings{
		level:  parseLevel(cfg.Level),
		format: cfg.Format,
		output: os.Stdout,
	}
	if s.format != FormatText {
		s.format = FormatJSON
	}
	for _, opt := range opts {
		opt(s)
	}

	hopts := &slog.HandlerOptions{Level: s.level}

	var h slog.Handler
	switch s.format {
	case FormatText:
		h = slog.NewTextHandler(s.output, hopts)
	default:
		h = slog.NewJSONHandler(s.output, hopts)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}

	return slog.New(h)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
