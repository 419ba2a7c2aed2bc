package trail

import (
	"testing"
)

func pt(i int) Point {
	return Point{X: float64(i), Y: float64(-i)}
}

func TestPushWithinCapacity(t *testing.T) {
	b := New(10)

	for i := 0; i < 5; i++ {
		b.Push(pt(i))
	}

	if b.Len() != 5 {
		t.Fatalf("expected len 5, got %d", b.Len())
	}
	for i, p := range b.Points() {
		if p != pt(i) {
			t.Errorf("point %d: got %v, want %v", i, p, pt(i))
		}
	}
}

func TestFIFOEviction(t *testing.T) {
	// Pushing 150 points into capacity 100 keeps exactly the last 100.
	b := New(100)

	for i := 0; i < 150; i++ {
		b.Push(pt(i))
	}

	if b.Len() != 100 {
		t.Fatalf("expected len 100, got %d", b.Len())
	}
	pts := b.Points()
	for i, p := range pts {
		want := pt(50 + i)
		if p != want {
			t.Fatalf("point %d: got %v, want %v", i, p, want)
		}
	}
}

func TestBoundHoldsUnderManyWraps(t *testing.T) {
	b := New(7)

	for i := 0; i < 1000; i++ {
		b.Push(pt(i))
		if b.Len() > 7 {
			t.Fatalf("length %d exceeds capacity after %d pushes", b.Len(), i+1)
		}

		// The view must always be chronological, oldest first.
		pts := b.Points()
		for j := 1; j < len(pts); j++ {
			if pts[j].X != pts[j-1].X+1 {
				t.Fatalf("ordering broken at push %d: %v", i+1, pts)
			}
		}
		if len(pts) > 0 && pts[len(pts)-1] != pt(i) {
			t.Fatalf("newest point wrong after push %d: got %v", i+1, pts[len(pts)-1])
		}
	}
}

func TestPointsIsContiguousView(t *testing.T) {
	b := New(4)
	for i := 0; i < 9; i++ {
		b.Push(pt(i))
	}

	// Repeated reads return the same window without any rebase work.
	p1 := b.Points()
	p2 := b.Points()
	if &p1[0] != &p2[0] || len(p1) != len(p2) {
		t.Error("expected repeated reads to return the same backing window")
	}
}

func TestClear(t *testing.T) {
	b := New(5)
	for i := 0; i < 12; i++ {
		b.Push(pt(i))
	}

	b.Clear()

	if b.Len() != 0 {
		t.Errorf("expected empty buffer, got len %d", b.Len())
	}
	if b.Cap() != 5 {
		t.Errorf("clear changed capacity: got %d", b.Cap())
	}

	// Usable again after clearing.
	b.Push(pt(42))
	if b.Len() != 1 || b.Points()[0] != pt(42) {
		t.Errorf("push after clear failed: %v", b.Points())
	}
}

func TestSetCapacityShrinkEvictsOldest(t *testing.T) {
	b := New(10)
	for i := 0; i < 10; i++ {
		b.Push(pt(i))
	}

	b.SetCapacity(4)

	if b.Cap() != 4 {
		t.Fatalf("expected capacity 4, got %d", b.Cap())
	}
	pts := b.Points()
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	for i, p := range pts {
		if p != pt(6+i) {
			t.Errorf("point %d: got %v, want %v", i, p, pt(6+i))
		}
	}
}

func TestSetCapacityGrowKeepsContents(t *testing.T) {
	b := New(3)
	for i := 0; i < 5; i++ {
		b.Push(pt(i))
	}

	b.SetCapacity(8)

	pts := b.Points()
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	for i, p := range pts {
		if p != pt(2+i) {
			t.Errorf("point %d: got %v, want %v", i, p, pt(2+i))
		}
	}

	for i := 5; i < 10; i++ {
		b.Push(pt(i))
	}
	if b.Len() != 8 {
		t.Errorf("expected len 8 after growth, got %d", b.Len())
	}
}

func TestZeroCapacity(t *testing.T) {
	b := New(0)
	b.Push(pt(1))
	if b.Len() != 0 {
		t.Errorf("zero-capacity buffer retained a point")
	}

	neg := New(-3)
	neg.Push(pt(1))
	if neg.Len() != 0 || neg.Cap() != 0 {
		t.Errorf("negative capacity not clamped: len=%d cap=%d", neg.Len(), neg.Cap())
	}
}

func BenchmarkPush(b *testing.B) {
	buf := New(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Push(pt(i))
	}
}

func BenchmarkPushThenRead(b *testing.B) {
	buf := New(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Push(pt(i))
		_ = buf.Points()
	}
}
