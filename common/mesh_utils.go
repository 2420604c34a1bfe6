package common

// Area2 is twice the signed area of triangle abc projected onto the xz-plane.
// area = 0 → a, b, c collinear
// area > 0 → c lies left of a→b (counter-clockwise turn in x/z)
func Area2(a, b, c Vec3) float32 {
	return (b[0]-a[0])*(c[2]-a[2]) - (c[0]-a[0])*(b[2]-a[2])
}

// PolygonArea2D returns twice the signed xz-plane area of the closed
// contour. Positive for counter-clockwise winding.
func PolygonArea2D(verts []Vec3) float32 {
	var area float32
	n := len(verts)
	for i := 0; i < n; i++ {
		j := Next(i, n)
		area += verts[i][0]*verts[j][2] - verts[j][0]*verts[i][2]
	}
	return area
}

// Sign returns -1, 0 or 1.
func Sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
