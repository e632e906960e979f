package geometry

// PointInRotatedRect reports whether point lies inside the rectangle centred
// on center, rotated by angle, with the given half extents. The point is
// brought into the rectangle's own frame first.
func PointInRotatedRect(point, center Point, angle, halfWidth, halfHeight float64) bool {
	toLocal, _ := Local(center, angle, 1).Inverse()
	local := toLocal.Apply(point)
	return local.X >= -halfWidth && local.X <= halfWidth &&
		local.Y >= -halfHeight && local.Y <= halfHeight
}

// RotationHandlePosition returns the world position of a rotate/scale handle
// that sits offset units beyond the top edge of a rotated, scaled box of
// baseHeight.
func RotationHandlePosition(center Point, angle, scale, baseHeight, offset float64) Point {
	above := center.Add(Point{X: 0, Y: -(baseHeight*scale/2 + offset)})
	return above.RotateAbout(center, angle)
}
