package graphics

// PathOp represents a path operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota
	PathOpLineTo
	PathOpClose
)

// PathSegment represents a single segment in a path.
type PathSegment struct {
	Op    PathOp
	Point Point
}

// Path is a sequence of straight-line subpaths.
type Path struct {
	Segments []PathSegment
	start    Point // Start of current subpath
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	pt := Point{x, y}
	p.Segments = append(p.Segments, PathSegment{Op: PathOpMoveTo, Point: pt})
	p.start = pt
}

// LineTo draws a line from the current point to the given point.
func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Op: PathOpLineTo, Point: Point{x, y}})
}

// Close closes the current subpath with a line back to the start.
func (p *Path) Close() {
	p.Segments = append(p.Segments, PathSegment{Op: PathOpClose, Point: p.start})
}

// IsEmpty returns true if the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Lines returns the straight segments of the path as start/end pairs,
// including the closing segment of closed subpaths.
func (p *Path) Lines() [][2]Point {
	var lines [][2]Point
	var current Point
	for _, seg := range p.Segments {
		switch seg.Op {
		case PathOpMoveTo:
			current = seg.Point
		case PathOpLineTo, PathOpClose:
			if seg.Op == PathOpLineTo || current != seg.Point {
				lines = append(lines, [2]Point{current, seg.Point})
			}
			current = seg.Point
		}
	}
	return lines
}
