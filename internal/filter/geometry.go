package filter

import (
	"math"
	"sort"
)

// point is a 2D point in pixel coordinates.
type point struct {
	x, y float64
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b point) point {
	return point{(a.x + b.x) / 2, (a.y + b.y) / 2}
}

// distance returns the Euclidean distance between a and b.
func distance(a, b point) float64 {
	return math.Hypot(b.x-a.x, b.y-a.y)
}

// angleDegrees returns the angle of the line from a to b in degrees,
// measured in image coordinates (y grows downward). Two points on the same
// row yield 0.
func angleDegrees(a, b point) float64 {
	return math.Atan2(b.y-a.y, b.x-a.x) * 180 / math.Pi
}

// convexHull computes the convex hull of the given points using the
// monotone chain algorithm. The result is in counter-clockwise order
// (image coordinates). Fewer than three input points yield a nil hull.
func convexHull(points []point) []point {
	if len(points) < 3 {
		return nil
	}

	pts := make([]point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].x != pts[j].x {
			return pts[i].x < pts[j].x
		}
		return pts[i].y < pts[j].y
	})

	cross := func(o, a, b point) float64 {
		return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
	}

	var lower []point
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []point
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil
	}
	return hull
}

// pointInPolygon reports whether p lies inside the polygon using the
// even-odd ray casting rule. Points on an edge count as inside.
func pointInPolygon(p point, polygon []point) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		if (a.y > p.y) != (b.y > p.y) {
			xCross := (b.x-a.x)*(p.y-a.y)/(b.y-a.y) + a.x
			if p.x <= xCross {
				inside = !inside
			}
		}
	}
	return inside
}
