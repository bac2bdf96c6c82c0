package tinydraw

import "github.com/zeronehost/tiny-draw/host"

// Option configures a Canvas during creation.
//
// Example:
//
//	// Browser document picked from the host registry
//	c, err := tinydraw.New("app", 500, 400)
//
//	// Explicit document (dependency injection)
//	c, err := tinydraw.New("app", 500, 400, tinydraw.WithDocument(doc))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	document   host.Document
	background Color
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		document:   nil, // Resolved from the host registry if nil
		background: White,
	}
}

// WithDocument sets the host document the canvas is built in.
// Without it, New opens the best available backend registered in package host.
func WithDocument(d host.Document) Option {
	return func(o *options) {
		o.document = d
	}
}

// WithBackground sets the initial background color. The default is opaque
// white. The value is only recorded; use Canvas.SetBackground to also style
// the container.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}
