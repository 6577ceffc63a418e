package geom

import (
	"image"
	"math"
)

// Epsilon is the tolerance of the half-plane inside test in [Clip] and of the
// parallel-line check when intersecting edges.
const Epsilon = 1e-9

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polygon is an ordered ring of points. The closing edge from the last vertex
// back to the first is implicit.
type Polygon []Point

// Area returns the absolute shoelace area of p, or 0 if p has fewer than
// three vertices.
func Area(p Polygon) float64 {
	if len(p) < 3 {
		return 0
	}
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return math.Abs(a) * 0.5
}

// Clip clips subject against clip using Sutherland–Hodgman, one edge of clip
// at a time. Each edge's implicit line splits the plane; a vertex is inside
// when it lies on the left of the directed edge in y-down coordinates
// (clockwise rings on screen), within [Epsilon].
//
// Clip returns nil if either polygon has fewer than three vertices or if the
// running output becomes empty. The result may have more vertices than
// subject and is not simplified.
func Clip(subject, clip Polygon) Polygon {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}

	output := append(Polygon(nil), subject...)
	for i := range clip {
		cp1 := clip[i]
		cp2 := clip[(i+1)%len(clip)]

		input := output
		if len(input) == 0 {
			return nil
		}
		output = make(Polygon, 0, len(input)+2)

		s := input[len(input)-1]
		for _, e := range input {
			eIn := inside(e, cp1, cp2)
			sIn := inside(s, cp1, cp2)
			switch {
			case eIn && !sIn:
				output = append(output, intersect(s, e, cp1, cp2), e)
			case eIn:
				output = append(output, e)
			case sIn:
				output = append(output, intersect(s, e, cp1, cp2))
			}
			s = e
		}
	}
	if len(output) == 0 {
		return nil
	}
	return output
}

// Coverage returns the fraction of triangle's area that lies inside mask,
// in [0, 1]. It returns 0 for degenerate triangles or empty intersections.
func Coverage(triangle, mask Polygon) float64 {
	inter := Clip(triangle, mask)
	if len(inter) == 0 {
		return 0
	}
	aTri := Area(triangle)
	if aTri <= 0 {
		return 0
	}
	return Area(inter) / aTri
}

// inside reports whether p is on the inner side of the directed edge a→b.
func inside(p, a, b Point) bool {
	return (b.X-a.X)*(p.Y-a.Y)-(b.Y-a.Y)*(p.X-a.X) >= -Epsilon
}

// intersect returns the intersection of line p1p2 with line p3p4.
// Parallel lines yield p2.
func intersect(p1, p2, p3, p4 Point) Point {
	denom := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(denom) < Epsilon {
		return p2
	}
	a := p1.X*p2.Y - p1.Y*p2.X
	b := p3.X*p4.Y - p3.Y*p4.X
	return Point{
		X: (a*(p3.X-p4.X) - (p1.X-p2.X)*b) / denom,
		Y: (a*(p3.Y-p4.Y) - (p1.Y-p2.Y)*b) / denom,
	}
}

// Bounds returns the integer bounding box of p: minimum coordinates floored,
// maximum coordinates ceiled. An empty polygon has empty bounds.
func (p Polygon) Bounds() image.Rectangle {
	if len(p) == 0 {
		return image.Rectangle{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, q := range p[1:] {
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// Translate returns a copy of p shifted by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, q := range p {
		out[i] = Point{X: q.X + dx, Y: q.Y + dy}
	}
	return out
}

// Scale returns a copy of p with every coordinate multiplied by s and rounded
// half up to the nearest integer.
func (p Polygon) Scale(s float64) Polygon {
	out := make(Polygon, len(p))
	for i, q := range p {
		out[i] = Point{X: Round(q.X * s), Y: Round(q.Y * s)}
	}
	return out
}

// Round rounds half up (towards positive infinity), which differs from
// math.Round for negative halves.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}
