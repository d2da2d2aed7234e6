package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a 2D coordinate. World and screen space share the type; the
// viewport decides which one a value is in.
type Point = mgl64.Vec2

func Pt(x, y float64) Point {
	return Point{x, y}
}

// Heading returns the unit vector for an angle in degrees. 0 points along +x
// and angles grow clockwise on screen because y grows downward.
func Heading(degrees float64) Point {
	rad := mgl64.DegToRad(degrees)
	return Point{math.Cos(rad), math.Sin(rad)}
}

// RoundToMultiple rounds v to the nearest multiple of step. Ties go to the
// even multiple so snapping is deterministic.
func RoundToMultiple(v float64, step int) float64 {
	if step <= 0 {
		return v
	}
	s := float64(step)
	return math.RoundToEven(v/s) * s
}

func ClonePoints(src []Point) []Point {
	if src == nil {
		return nil
	}
	res := make([]Point, len(src))
	copy(res, src)
	return res
}

// InsertPoint returns pts with p inserted at index i, shifting later points.
func InsertPoint(pts []Point, i int, p Point) []Point {
	if i < 0 {
		i = 0
	}
	if i >= len(pts) {
		return append(pts, p)
	}
	pts = append(pts, Point{})
	copy(pts[i+1:], pts[i:])
	pts[i] = p
	return pts
}

// RemovePoint returns pts without the point at index i.
func RemovePoint(pts []Point, i int) []Point {
	if i < 0 || i >= len(pts) {
		return pts
	}
	return append(pts[:i], pts[i+1:]...)
}

func PointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Segment is a line between two points.
type Segment struct {
	A, B Point
}

// Segments lists the edges of a point list. Open polylines need at least two
// points; closed polygons need at least three.
func Segments(pts []Point, closed bool) []Segment {
	if len(pts) < 2 || (closed && len(pts) < 3) {
		return nil
	}
	segs := make([]Segment, 0, len(pts))
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, Segment{A: pts[i], B: pts[i+1]})
	}
	if closed {
		segs = append(segs, Segment{A: pts[len(pts)-1], B: pts[0]})
	}
	return segs
}

// Centroid is the average of the points, used to anchor labels.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pts)))
}

// Translate returns every point shifted by d.
func Translate(pts []Point, d Point) []Point {
	res := make([]Point, len(pts))
	for i, p := range pts {
		res[i] = p.Add(d)
	}
	return res
}
