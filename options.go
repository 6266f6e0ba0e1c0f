package fx

import "golang.org/x/image/font/sfnt"

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Record drawing without a backend; pass one to FlushTo later
//	c := fx.NewContext(800, 600)
//
//	// Render into a registered backend
//	c := fx.NewContext(800, 600, fx.WithBackendName("raster"))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	backend     Backend
	backendName string
	styles      Styles
	font        *sfnt.Font
	fontSize    float64
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		fontSize: 24,
	}
}

// WithBackend sets the backend that Flush draws onto.
func WithBackend(b Backend) ContextOption {
	return func(o *contextOptions) {
		o.backend = b
	}
}

// WithBackendName selects a registered backend, created at the context's
// size. An unknown name is reported by Flush.
//
// Backends register themselves when their package is imported:
//
//	import _ "github.com/gogpu/fx/raster"
//
//	c := fx.NewContext(800, 600, fx.WithBackendName("raster"))
func WithBackendName(name string) ContextOption {
	return func(o *contextOptions) {
		o.backendName = name
	}
}

// WithStyles sets the style sheet used by Context.Style.
func WithStyles(s Styles) ContextOption {
	return func(o *contextOptions) {
		o.styles = s
	}
}

// WithFont sets the font and size used by Context.Text. A nil font keeps
// the default Go Regular face.
func WithFont(f *sfnt.Font, size float64) ContextOption {
	return func(o *contextOptions) {
		o.font = f
		if size > 0 {
			o.fontSize = size
		}
	}
}
