package outline

import "math"

func snap(val, spacing float64) float64 {
	return math.Round(val/spacing) * spacing
}

// Gridsnap returns a copy of the polyline with all points snapped to a grid with the given spacing. Consecutive points that snap to the same grid point are merged.
func (p *Polyline) Gridsnap(spacing float64) *Polyline {
	q := &Polyline{}
	for _, coord := range p.coords {
		coord = Point{snap(coord.X, spacing), snap(coord.Y, spacing)}
		if len(q.coords) == 0 || q.coords[len(q.coords)-1] != coord {
			q.coords = append(q.coords, coord)
		}
	}
	return q
}

type itemVW struct {
	Point
	area       float64
	prev, next int32 // indices into items, -1 for none
	heapIdx    int32
}

// Simplify returns a copy of the polyline simplified with the Visvalingam-Whyatt algorithm: the point that spans the smallest triangle with its neighbours is removed repeatedly, until all triangles have an area of at least tolerance. The end points of an open polyline are kept, and a closed polyline keeps at least three points.
func (p *Polyline) Simplify(tolerance float64) *Polyline {
	closed := p.Closed()
	coords := p.coords
	if closed {
		coords = coords[:len(coords)-1]
	}
	n := len(coords)
	if n < 3 || tolerance <= 0.0 {
		return PolylineFromPoints(p.coords...)
	}

	computeArea := func(a, b, c Point) float64 {
		return math.Abs(a.PerpDot(b) + b.PerpDot(c) + c.PerpDot(a))
	}
	tolerance *= 2.0 // save on 0.5 multiply in computeArea

	items := make([]itemVW, n)
	for i, coord := range coords {
		prev, next := int32(i-1), int32(i+1)
		if closed {
			prev, next = int32((i+n-1)%n), int32((i+1)%n)
		} else if i == n-1 {
			next = -1
		}
		items[i] = itemVW{Point: coord, area: math.NaN(), prev: prev, next: next}
	}

	q := make(heapVW, 0, n)
	for i := range items {
		if item := &items[i]; item.prev != -1 && item.next != -1 {
			item.area = computeArea(items[item.prev].Point, item.Point, items[item.next].Point)
			q.Append(item)
		}
	}
	q.Init()

	first := int32(0)
	for left := n; 0 < len(q); left-- {
		item := q.Pop()
		if tolerance <= item.area || closed && left <= 3 {
			break
		}

		// remove current point from linked list
		items[item.prev].next = item.next
		items[item.next].prev = item.prev
		if item == &items[first] {
			first = item.next
		}

		// update neighbours
		for _, j := range [2]int32{item.prev, item.next} {
			if nb := &items[j]; nb.prev != -1 && nb.next != -1 {
				nb.area = computeArea(items[nb.prev].Point, nb.Point, items[nb.next].Point)
				q.Fix(int(nb.heapIdx))
			}
		}
	}

	r := &Polyline{}
	for i := first; ; {
		r.coords = append(r.coords, items[i].Point)
		if i = items[i].next; i == -1 || i == first {
			break
		}
	}
	if closed {
		r.Close()
	}
	return r
}

type heapVW []*itemVW

func (q heapVW) Init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *heapVW) Append(item *itemVW) {
	item.heapIdx = int32(len(*q))
	*q = append(*q, item)
}

func (q *heapVW) Pop() *itemVW {
	n := len(*q) - 1
	q.swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	(*q) = (*q)[:n]
	return item
}

func (q heapVW) Fix(i int) {
	if !q.down(i, len(q)) {
		q.up(i)
	}
}

func (q heapVW) less(i, j int) bool {
	return q[i].area < q[j].area
}

func (q heapVW) swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapIdx, q[j].heapIdx = int32(i), int32(j)
}

// from container/heap
func (q heapVW) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(j, i) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

func (q heapVW) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // right child
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
	return i0 < i
}
