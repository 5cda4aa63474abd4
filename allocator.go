package fontatlas

import "sort"

// Outcome describes the result of an Allocator.Reserve call.
type Outcome uint8

const (
	// AlreadyPlaced means the key had a prior reservation. The returned
	// rectangle is its committed placement, unchanged.
	AlreadyPlaced Outcome = iota

	// NewlyPlaced means free space was found and committed for the key.
	// The caller must populate pixel data at the returned rectangle
	// before drawing from it.
	NewlyPlaced

	// OutOfSpace means no free rectangle large enough exists. The
	// failure is scoped to this request; smaller requests may still
	// succeed later.
	OutOfSpace
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case AlreadyPlaced:
		return "AlreadyPlaced"
	case NewlyPlaced:
		return "NewlyPlaced"
	case OutOfSpace:
		return "OutOfSpace"
	default:
		return "Unknown"
	}
}

// Reservation is the result of a Reserve call. Rect is meaningful for
// the AlreadyPlaced and NewlyPlaced outcomes and zero for OutOfSpace.
type Reservation struct {
	Outcome Outcome
	Rect    Rect
}

// Allocator hands out non-overlapping rectangles from a fixed-size
// surface and remembers every placement by key, so equal keys always
// resolve to the same rectangle. Space is consumed monotonically:
// there is no eviction, no merging of free space and no resizing.
// When the surface fills up, Reserve reports OutOfSpace per request
// instead of growing.
//
// The free list is a superset of the actually free area: entries may
// overlap each other, but no entry ever overlaps a committed
// placement.
//
// Allocator is not safe for concurrent use. It is meant to be owned by
// a single renderer and called from one goroutine.
type Allocator[K comparable] struct {
	width  int
	height int

	free     []Rect
	reserved map[K]Rect
}

// NewAllocator creates an allocator for a width x height surface with
// all of its area free.
func NewAllocator[K comparable](width, height int) *Allocator[K] {
	return &Allocator[K]{
		width:    width,
		height:   height,
		free:     []Rect{{W: width, H: height}},
		reserved: make(map[K]Rect),
	}
}

// Reserve returns the placement for key, committing a new one if the
// key has not been seen before. A request with zero width or height is
// satisfied immediately with a degenerate rectangle; it consumes no
// space and records no reservation.
func (a *Allocator[K]) Reserve(key K, width, height int) Reservation {
	if r, ok := a.reserved[key]; ok {
		return Reservation{Outcome: AlreadyPlaced, Rect: r}
	}
	if width <= 0 || height <= 0 {
		return Reservation{Outcome: NewlyPlaced}
	}

	placed, ok := a.findSlot(width, height)
	if !ok {
		return Reservation{Outcome: OutOfSpace}
	}
	a.reserved[key] = placed
	return Reservation{Outcome: NewlyPlaced, Rect: placed}
}

// findSlot carves a width x height rectangle out of the free list.
//
// The search is first-fit: the free list is kept sorted by area
// ascending, so the scan prefers tight-fitting small areas and leaves
// the large ones for glyphs that need them.
func (a *Allocator[K]) findSlot(width, height int) (Rect, bool) {
	idx := -1
	for i, r := range a.free {
		if r.W >= width && r.H >= height {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Rect{}, false
	}

	// Trim the candidate to the requested extent, anchored at its
	// origin. The excess to the right and below stays coverable by the
	// split slivers produced below.
	placed := Rect{X: a.free[idx].X, Y: a.free[idx].Y, W: width, H: height}

	// Drop free rectangles swallowed whole by the placement.
	kept := a.free[:0]
	for _, r := range a.free {
		if !placed.ContainsRect(r) {
			kept = append(kept, r)
		}
	}
	a.free = kept

	// Split every remaining intersecting rectangle into the slivers
	// strictly left of, right of, above and below the placement.
	// Slivers may overlap each other, never the placement.
	for i := 0; i < len(a.free); {
		r := a.free[i]
		if !r.Intersects(placed) {
			i++
			continue
		}
		a.free[i] = a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]

		if r.X < placed.X {
			a.free = append(a.free, Rect{X: r.X, Y: r.Y, W: placed.X - r.X, H: r.H})
		}
		if r.Right() > placed.Right() {
			a.free = append(a.free, Rect{X: placed.Right(), Y: r.Y, W: r.Right() - placed.Right(), H: r.H})
		}
		if r.Y < placed.Y {
			a.free = append(a.free, Rect{X: r.X, Y: r.Y, W: r.W, H: placed.Y - r.Y})
		}
		if r.Bottom() > placed.Bottom() {
			a.free = append(a.free, Rect{X: r.X, Y: placed.Bottom(), W: r.W, H: r.Bottom() - placed.Bottom()})
		}
	}

	// Smallest first, so future scans fill nooks before big areas.
	sort.Slice(a.free, func(i, j int) bool {
		return a.free[i].Area() < a.free[j].Area()
	})

	// The splitting above can leave small free rectangles nested inside
	// larger ones. Remove any rectangle fully contained in a larger
	// (later-sorted) one, so the free list does not grow unbounded with
	// fake small areas.
	for i := 1; i < len(a.free); i++ {
		r := a.free[i]
		for j := 0; j < i; {
			if r.ContainsRect(a.free[j]) {
				a.free = append(a.free[:j], a.free[j+1:]...)
				i--
			} else {
				j++
			}
		}
	}

	return placed, true
}

// Len returns the number of committed reservations.
func (a *Allocator[K]) Len() int { return len(a.reserved) }

// FreeRectCount returns the current length of the free list. Free
// rectangles may overlap, so this is a bookkeeping measure, not a
// measure of free area.
func (a *Allocator[K]) FreeRectCount() int { return len(a.free) }

// Used returns the fraction of the surface committed to reservations,
// in the range [0, 1].
func (a *Allocator[K]) Used() float64 {
	total := 0
	for _, r := range a.reserved {
		total += r.Area()
	}
	return float64(total) / float64(a.width*a.height)
}

// Size returns the surface extent the allocator was created with.
func (a *Allocator[K]) Size() (width, height int) { return a.width, a.height }
