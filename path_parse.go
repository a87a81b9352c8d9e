package outline

import (
	"strings"
)

// commandArity is the number of values consumed by each path command, keyed by the upper case command.
var commandArity = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
	'Z': 0,
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// isCommand is true for any letter that starts a command. Exponents are not commands.
func isCommand(c byte) bool {
	return ('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') && c != 'e' && c != 'E'
}

// pathState is the cursor of the path data parser. It is local to a single element.
type pathState struct {
	cur   Point // current point
	start Point // start of the current subpath, target of a close
	ctrl  Point // last control point of the previous curve, for reflection
	prev  byte  // upper case command of the previous operation, 0 at the start
}

// reflect returns the first control point of a smooth curve: the last control point mirrored through the current point if the previous operation was a curve of the same kind, otherwise the current point.
func (st *pathState) reflect(kinds ...byte) Point {
	for _, kind := range kinds {
		if st.prev == kind {
			return st.cur.Mul(2.0).Sub(st.ctrl)
		}
	}
	return st.cur
}

type pathParser struct {
	st      pathState
	path    *Path
	samples *sampler
	ds      *diagnostics
}

// ParsePath parses SVG path data into a path and its sampled polyline. It never fails: malformed parts are skipped or replaced and reported as diagnostics.
// Parsing starts at the origin and commands keep their case-defined meaning, uppercase being absolute and lowercase relative to the current point.
func ParsePath(d string, opts Options) (*Path, *Polyline, []Diagnostic) {
	ds := &diagnostics{elem: ElementID{Tag: "path"}}
	p, poly := parsePath(d, opts, ds)
	return p, poly, ds.list
}

// MustParsePath parses SVG path data and panics when a warning is raised.
func MustParsePath(d string) *Path {
	p, _, diags := ParsePath(d, DefaultOptions)
	for _, diag := range diags {
		if diag.Severity == Warning {
			panic(diag)
		}
	}
	return p
}

func parsePath(d string, opts Options, ds *diagnostics) (*Path, *Polyline) {
	parser := &pathParser{
		path:    &Path{},
		samples: newSampler(opts),
		ds:      ds,
	}

	i := 0
	for i < len(d) && !isCommand(d[i]) {
		i++
	}
	if lead := strings.TrimSpace(d[:i]); lead != "" {
		ds.warn(UnknownCommand, "path data must start with a command, skipping %q", lead)
	}
	for i < len(d) {
		j := i + 1
		for j < len(d) && !isCommand(d[j]) {
			j++
		}
		parser.run(d[i], d[i+1:j])
		i = j
	}
	return parser.path, parser.samples.poly
}

// run replays the values of a single command letter against its arity. Extra values repeat the command implicitly, a moveto being followed by linetos.
func (p *pathParser) run(cmd byte, payload string) {
	n, ok := commandArity[toUpper(cmd)]
	if !ok {
		p.ds.warn(UnknownCommand, "unknown path command %q", string(cmd))
		return
	}

	args := tokenize(payload, p.ds)
	if n == 0 {
		p.close()
		if 0 < len(args) {
			p.ds.warn(MalformedNumber, "%d values after %q ignored", len(args), string(cmd))
		}
		return
	} else if len(args) == 0 {
		p.ds.warn(MalformedNumber, "path command %q without values", string(cmd))
		return
	}

	if rem := len(args) % n; rem != 0 {
		p.ds.warn(MalformedNumber, "%d trailing values of %q ignored", rem, string(cmd))
	}
	for i := 0; i+n <= len(args); i += n {
		p.exec(cmd, args[i:i+n])
		if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
	}
}

func (p *pathParser) exec(cmd byte, args []float64) {
	st := &p.st
	cur := st.cur
	var offset Point
	if 'a' <= cmd {
		offset = cur
	}
	pt := func(i int) Point {
		return Point{args[i], args[i+1]}.Add(offset)
	}

	switch toUpper(cmd) {
	case 'M':
		end := pt(0)
		p.path.MoveTo(end.X, end.Y)
		p.samples.moveTo(end)
		st.start = end
		st.cur = end
	case 'L':
		p.lineTo(pt(0))
	case 'H':
		p.lineTo(Point{args[0] + offset.X, cur.Y})
	case 'V':
		p.lineTo(Point{cur.X, args[0] + offset.Y})
	case 'C':
		c1, c2, end := pt(0), pt(2), pt(4)
		p.cubeTo(c1, c2, end)
	case 'S':
		c1 := st.reflect('C', 'S')
		c2, end := pt(0), pt(2)
		p.cubeTo(c1, c2, end)
	case 'Q':
		c1, end := pt(0), pt(2)
		p.quadTo(c1, end)
	case 'T':
		c1 := st.reflect('Q', 'T')
		p.quadTo(c1, pt(0))
	case 'A':
		rx, ry, rot := args[0], args[1], args[2]
		large, sweep := args[3] != 0.0, args[4] != 0.0
		end := pt(5)
		arc, err := EndpointToCenter(cur.X, cur.Y, rx, ry, rot, large, sweep, end.X, end.Y)
		if err != nil {
			p.ds.warn(DegenerateArc, "arc from %v to %v with radii %g,%g drawn as line", cur, end, rx, ry)
			p.path.LineTo(end.X, end.Y)
			p.samples.lineTo(cur, end)
		} else {
			p.path.ArcTo(rx, ry, rot, large, sweep, end.X, end.Y)
			p.samples.arcTo(cur, arc, end)
		}
		st.cur = end
	}
	st.prev = toUpper(cmd)
}

func (p *pathParser) lineTo(end Point) {
	p.path.LineTo(end.X, end.Y)
	p.samples.lineTo(p.st.cur, end)
	p.st.cur = end
}

func (p *pathParser) quadTo(c1, end Point) {
	p.path.QuadTo(c1.X, c1.Y, end.X, end.Y)
	p.samples.quadTo(p.st.cur, c1, end)
	p.st.ctrl = c1
	p.st.cur = end
}

func (p *pathParser) cubeTo(c1, c2, end Point) {
	p.path.CubeTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	p.samples.cubeTo(p.st.cur, c1, c2, end)
	p.st.ctrl = c2
	p.st.cur = end
}

func (p *pathParser) close() {
	p.path.Close()
	p.samples.lineTo(p.st.cur, p.st.start)
	p.st.cur = p.st.start
	p.st.prev = 'Z'
}
