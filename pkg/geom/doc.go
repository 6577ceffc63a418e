// Package geom provides the polygon primitives used to cut photos into
// triangular pieces.
//
// All coordinates live in canvas space: x grows to the right, y grows
// downwards. A [Polygon] is a closed ring; the last vertex connects back to
// the first.
//
// # Functions
//
//   - [Area]: shoelace area, always non-negative
//   - [Clip]: Sutherland–Hodgman clipping of a subject ring against a clip ring
//   - [Coverage]: fraction of a triangle that survives clipping against a mask
//
// Every function here is total. Malformed input (fewer than three vertices,
// zero-area triangles, empty intersections) degrades to a zero or empty
// result instead of an error, so callers simply discard such triangles.
//
// # Tolerance
//
// The inside test of [Clip] accepts points up to [Epsilon] outside an edge.
// Grid triangles frequently have vertices lying exactly on mask edges, and the
// tolerance is what keeps those triangles whole. Changing it changes which
// triangles are retained.
package geom
