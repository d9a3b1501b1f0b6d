package transformblend

// LineDrawer is anything that can draw a colored 3D line segment; a renderer, a debug overlay, or a recorder in a test.
type LineDrawer interface {
	DrawLine(start, end Vector3, color Color)
}

// Line is a colored 3D line segment.
type Line struct {
	Start, End Vector3
	Color      Color
}

var referenceCubeCorners = [8]Vector3{
	{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5},
	{0.5, -0.5, -0.5}, {0.5, -0.5, 0.5},
	{-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5},
	{0.5, 0.5, -0.5}, {0.5, 0.5, 0.5},
}

// ReferenceCube returns the line segments making up a unit cube centered on the origin, followed by a unit-length
// axis gizmo at the origin. The cube's edges are colored by the axis they run along (yellow for X, blue for Y, red for Z),
// and the gizmo's X, Y, and Z lines are red, green, and blue respectively. Drawing it through a Matrix4 shows how the
// Matrix4 translates, rotates, and scales space.
func ReferenceCube() []Line {

	red := NewColor(1, 0, 0, 1)
	yellow := NewColor(1, 1, 0, 1)
	green := NewColor(0, 1, 0, 1)
	blue := NewColor(0, 0, 1, 1)

	c := referenceCubeCorners

	return []Line{
		{c[0], c[1], red},
		{c[2], c[3], red},
		{c[0], c[2], yellow},
		{c[1], c[3], yellow},
		{c[0], c[4], blue},
		{c[1], c[5], blue},
		{c[2], c[6], blue},
		{c[3], c[7], blue},
		{c[4], c[5], red},
		{c[6], c[7], red},
		{c[4], c[6], yellow},
		{c[5], c[7], yellow},

		{Vector3{}, WorldRight, red},
		{Vector3{}, WorldUp, green},
		{Vector3{}, WorldBackward, blue},
	}

}

// TransformLines returns a copy of the lines given, with each end point transformed by the Matrix4.
func TransformLines(matrix Matrix4, lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		out = append(out, Line{
			Start: matrix.MultVec(line.Start),
			End:   matrix.MultVec(line.End),
			Color: line.Color,
		})
	}
	return out
}

// DrawLines hands each line to the LineDrawer in order.
func DrawLines(drawer LineDrawer, lines []Line) {
	for _, line := range lines {
		drawer.DrawLine(line.Start, line.End, line.Color)
	}
}

// TargetMarker returns a unit-length line pointing up from the point partway between the Matrix4's translation and the
// target, by the percentage given. It shows where a position lerp alone would carry the Matrix4's origin.
func TargetMarker(matrix Matrix4, target Vector3, percent float32) Line {
	pos := matrix.Translation().Lerp(target, percent)
	return Line{Start: pos, End: pos.Add(WorldUp), Color: NewColor(0, 1, 0, 1)}
}
