// Package trail provides a bounded FIFO history of 2D points with an
// O(1) contiguous oldest-first view, used to draw fading bob trails.
package trail

// Point is a 2D position in world coordinates.
type Point struct {
	X, Y float64
}

// Buffer keeps the most recent points up to a fixed capacity.
//
// It is a sliding window over a backing slice of at most 2*capacity
// elements: pushes append, and once the window start reaches capacity
// the live window is rebased to the front of the backing slice. The
// rebase copies capacity elements once per capacity pushes, so Push is
// amortized O(1), and Points is always a plain subslice with no
// per-read work regardless of how many pushes preceded it.
type Buffer struct {
	buf      []Point
	start    int
	capacity int
}

// New creates an empty buffer. Negative capacities are treated as zero;
// a zero-capacity buffer discards every push.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		buf:      make([]Point, 0, 2*capacity),
		capacity: capacity,
	}
}

// Push appends p as the newest point, evicting the oldest when the
// buffer is at capacity. Amortized O(1).
func (b *Buffer) Push(p Point) {
	if b.capacity == 0 {
		return
	}
	b.buf = append(b.buf, p)
	if len(b.buf)-b.start > b.capacity {
		b.start++
	}
	if b.start == b.capacity {
		n := copy(b.buf, b.buf[b.start:])
		b.buf = b.buf[:n]
		b.start = 0
	}
}

// Points returns the buffered points oldest-first as one contiguous
// slice. The slice aliases internal storage and is valid until the
// next Push, Clear, or SetCapacity; callers must not mutate it.
func (b *Buffer) Points() []Point {
	return b.buf[b.start:]
}

// Len returns the number of buffered points.
func (b *Buffer) Len() int {
	return len(b.buf) - b.start
}

// Cap returns the maximum number of retained points.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Clear empties the buffer. Capacity and backing storage are kept.
func (b *Buffer) Clear() {
	b.buf = b.buf[:0]
	b.start = 0
}

// SetCapacity changes the capacity. When shrinking below the current
// length, the oldest points are evicted until the length fits.
func (b *Buffer) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	pts := b.Points()
	if len(pts) > capacity {
		pts = pts[len(pts)-capacity:]
	}
	fresh := make([]Point, len(pts), 2*capacity)
	copy(fresh, pts)
	b.buf = fresh
	b.start = 0
	b.capacity = capacity
}
