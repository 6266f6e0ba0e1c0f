// Package stroke converts stroked polylines to filled outlines.
//
// A stroke becomes a set of polygons: one quadrilateral per segment and
// one disc per vertex, which gives round joins and round caps. Every
// polygon is emitted with the same orientation, so filling the set with
// the nonzero rule covers the union without cancellation where pieces
// overlap.
package stroke
