// Package raster provides the CPU reference backend for fx.
//
// A Backend composites onto an *image.RGBA. It keeps a graphics-state
// stack (opacity, blend mode, drop shadow, clip mask), supports nested
// transparency layers, and rasterizes paths with anti-aliasing.
//
// Import the package to register the backend as "raster":
//
//	import _ "github.com/gogpu/fx/raster"
//
//	c := fx.NewContext(800, 600, fx.WithBackendName("raster"))
package raster
