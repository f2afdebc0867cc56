package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config

	// input/output overrides for tests; nil means the real terminal.
	input  io.Reader
	output io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithIO redirects the terminal program's input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *application) {
		a.input = in
		a.output = out
	}
}
