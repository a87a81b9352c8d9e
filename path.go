package outline

import (
	"math"
	"strconv"
	"strings"
)

// PathCmd is the command of a path operation.
type PathCmd int

// see PathCmd
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	ArcToCmd
	CloseCmd
)

func (cmd PathCmd) String() string {
	switch cmd {
	case MoveToCmd:
		return "MoveTo"
	case LineToCmd:
		return "LineTo"
	case QuadToCmd:
		return "QuadTo"
	case CubeToCmd:
		return "CubeTo"
	case ArcToCmd:
		return "ArcTo"
	case CloseCmd:
		return "Close"
	}
	return "PathCmd(" + strconv.Itoa(int(cmd)) + ")"
}

// Op is a single path operation. All coordinates are absolute.
//   - MoveTo and LineTo use End.
//   - QuadTo uses C1 and End.
//   - CubeTo uses C1, C2 and End.
//   - ArcTo uses RX, RY, Rot (in degrees), Large, Sweep and End.
//   - Close uses End, which is the start of the subpath it closes.
type Op struct {
	Cmd          PathCmd
	C1, C2       Point
	RX, RY, Rot  float64
	Large, Sweep bool
	End          Point
}

// Equals returns true if both operations are equal with tolerance Epsilon.
func (op Op) Equals(q Op) bool {
	if op.Cmd != q.Cmd || !op.End.Equals(q.End) {
		return false
	}
	switch op.Cmd {
	case QuadToCmd:
		return op.C1.Equals(q.C1)
	case CubeToCmd:
		return op.C1.Equals(q.C1) && op.C2.Equals(q.C2)
	case ArcToCmd:
		return Equal(op.RX, q.RX) && Equal(op.RY, q.RY) && Equal(op.Rot, q.Rot) && op.Large == q.Large && op.Sweep == q.Sweep
	}
	return true
}

// Path is a geometric path made of one or more subpaths. Its operations are in absolute coordinates.
type Path struct {
	ops   []Op
	start Point // start of the current subpath
}

// Empty returns true if P has no operations.
func (p *Path) Empty() bool {
	return len(p.ops) == 0
}

// Len returns the number of operations.
func (p *Path) Len() int {
	return len(p.ops)
}

// Ops returns the operations of the path. The slice must not be modified.
func (p *Path) Ops() []Op {
	return p.ops
}

// Copy returns a copy of P.
func (p *Path) Copy() *Path {
	q := &Path{start: p.start}
	q.ops = append(q.ops, p.ops...)
	return q
}

// Pos returns the current position of the path, which is the end point of the last operation.
func (p *Path) Pos() Point {
	if 0 < len(p.ops) {
		return p.ops[len(p.ops)-1].End
	}
	return Point{}
}

// StartPos returns the start point of the current subpath.
func (p *Path) StartPos() Point {
	return p.start
}

// Closed returns true if the last subpath is closed.
func (p *Path) Closed() bool {
	return 0 < len(p.ops) && p.ops[len(p.ops)-1].Cmd == CloseCmd
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.ops) != len(q.ops) {
		return false
	}
	for i := range p.ops {
		if !p.ops[i].Equals(q.ops[i]) {
			return false
		}
	}
	return true
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.start = Point{x, y}
	p.ops = append(p.ops, Op{Cmd: MoveToCmd, End: p.start})
}

// LineTo adds a linear path to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.ops = append(p.ops, Op{Cmd: LineToCmd, End: Point{x, y}})
}

// QuadTo adds a quadratic Bézier path with control point (cpx,cpy) and end point (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	p.ops = append(p.ops, Op{Cmd: QuadToCmd, C1: Point{cpx, cpy}, End: Point{x, y}})
}

// CubeTo adds a cubic Bézier path with control points (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.ops = append(p.ops, Op{Cmd: CubeToCmd, C1: Point{cpx1, cpy1}, C2: Point{cpx2, cpy2}, End: Point{x, y}})
}

// ArcTo adds an elliptical arc with radii rx and ry, with rot the counter clockwise rotation with respect to the coordinate system in degrees, large and sweep booleans (see https://developer.mozilla.org/en-US/docs/Web/SVG/Tutorial/Paths#Arcs), and (x,y) the end position of the pen.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	p.ops = append(p.ops, Op{Cmd: ArcToCmd, RX: rx, RY: ry, Rot: rot, Large: large, Sweep: sweep, End: Point{x, y}})
}

// Close closes the current subpath with a straight line back to its start.
func (p *Path) Close() {
	p.ops = append(p.ops, Op{Cmd: CloseCmd, End: p.start})
}

////////////////////////////////////////////////////////////////

// Bounds returns the bounding box of the path's end and control points. Arcs are bounded by their sampled points.
func (p *Path) Bounds() Rect {
	if len(p.ops) == 0 {
		return Rect{}
	}
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	add := func(q Point) {
		xmin, ymin = math.Min(xmin, q.X), math.Min(ymin, q.Y)
		xmax, ymax = math.Max(xmax, q.X), math.Max(ymax, q.Y)
	}
	var pos Point
	for _, op := range p.ops {
		switch op.Cmd {
		case QuadToCmd:
			add(op.C1)
		case CubeToCmd:
			add(op.C1)
			add(op.C2)
		case ArcToCmd:
			if arc, err := EndpointToCenter(pos.X, pos.Y, op.RX, op.RY, op.Rot, op.Large, op.Sweep, op.End.X, op.End.Y); err == nil {
				for i := 1; i < 16; i++ {
					add(arc.PointAt(arc.Start + arc.Delta*float64(i)/16.0))
				}
			}
		}
		add(op.End)
		pos = op.End
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', 5, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// String returns the path as SVG path data with absolute commands.
func (p *Path) String() string {
	sb := strings.Builder{}
	for _, op := range p.ops {
		switch op.Cmd {
		case MoveToCmd:
			sb.WriteString("M" + ftos(op.End.X) + " " + ftos(op.End.Y))
		case LineToCmd:
			sb.WriteString("L" + ftos(op.End.X) + " " + ftos(op.End.Y))
		case QuadToCmd:
			sb.WriteString("Q" + ftos(op.C1.X) + " " + ftos(op.C1.Y) + " " + ftos(op.End.X) + " " + ftos(op.End.Y))
		case CubeToCmd:
			sb.WriteString("C" + ftos(op.C1.X) + " " + ftos(op.C1.Y) + " " + ftos(op.C2.X) + " " + ftos(op.C2.Y) + " " + ftos(op.End.X) + " " + ftos(op.End.Y))
		case ArcToCmd:
			sb.WriteString("A" + ftos(op.RX) + " " + ftos(op.RY) + " " + ftos(op.Rot) + " " + flag(op.Large) + " " + flag(op.Sweep) + " " + ftos(op.End.X) + " " + ftos(op.End.Y))
		case CloseCmd:
			sb.WriteString("z")
		}
	}
	return sb.String()
}
