package pdf

import (
	"log/slog"
)

// Option is a function that modifies how a document is opened
type Option func(*openConfig)

type openConfig struct {
	Password string
	Backends []string
	Logger   *slog.Logger
}

func newOpenConfig(opts ...Option) *openConfig {
	c := &openConfig{
		Backends: DefaultBackends(),
		Logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithPassword sets the user and owner password for encrypted documents.
// Only the pdfcpu backend honors it.
func WithPassword(password string) Option {
	return func(c *openConfig) {
		c.Password = password
	}
}

// WithBackends restricts and orders the backends tried by Open
func WithBackends(names ...string) Option {
	return func(c *openConfig) {
		c.Backends = append([]string(nil), names...)
	}
}

// WithLogger sets the logger that traces backend attempts
func WithLogger(logger *slog.Logger) Option {
	return func(c *openConfig) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
