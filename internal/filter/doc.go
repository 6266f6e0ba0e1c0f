// Package filter provides the pixel filters behind drop shadows:
//   - Gaussian blur of an alpha mask (separable, two 1D passes)
//   - Drop shadow (offset + blur + colorize)
package filter
