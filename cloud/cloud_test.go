package cloud

import (
	"errors"
	"testing"

	"github.com/npillmayer/scatter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func pairs(coords ...float64) []scatter.Pair {
	pts := make([]scatter.Pair, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, scatter.P(coords[i], coords[i+1]))
	}
	return pts
}

func samePoints(t *testing.T, got, want []scatter.Pair) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("point count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			t.Fatalf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCleanKeepsEarlierPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := pairs(0, 0, 0.1, 0, 5, 0)
	out := Clean(pts, 1, 0)
	samePoints(t, out, pairs(0, 0, 5, 0))
}

func TestCleanGreedyFirstPass(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// three mutually close points: the pair (0,1) marks point 1, the
	// pair (0,2) marks point 2, so only the first point survives
	pts := pairs(0, 0, 0.1, 0, 0.2, 0)
	out := Clean(pts, 1, 0)
	samePoints(t, out, pairs(0, 0))
}

func TestCleanSkipsImplicatedPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// point 1 is removed by the pair (0,1); the later pair (1,2)
	// involves a removed point and must be skipped, keeping point 2
	pts := pairs(0, 0, 0.6, 0, 1.2, 0, 9, 9)
	out := Clean(pts, 1, 0)
	samePoints(t, out, pairs(0, 0, 1.2, 0, 9, 9))
}

func TestCleanIdempotent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := pairs(0, 0, 0.3, 0, 2, 0, 2.2, 0, 4, 4, 8, 8)
	once := Clean(pts, 1, 0)
	twice := Clean(once, 1, 0)
	samePoints(t, twice, once)
}

func TestCleanTolerance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := pairs(0, 0, 0.8, 0)
	samePoints(t, Clean(pts, 1, 0), pairs(0, 0))
	// tolerance narrows the threshold below the pair's distance
	samePoints(t, Clean(pts, 1, 0.5), pts)
}

func TestBoundingBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box, err := BoundingBox(pairs(1, 2, -3, 4, 5, -6))
	if err != nil {
		t.Fatalf("BoundingBox failed: %v", err)
	}
	assert.Equal(t, Box{X: -3, Y: -6, Width: 8, Height: 10}, box)
	assert.True(t, box.Center().Equal(scatter.P(1, -1)))
}

func TestBoundingBoxEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := BoundingBox(nil)
	if !errors.Is(err, ErrEmptyCloud) {
		t.Fatalf("expected ErrEmptyCloud, got %v", err)
	}
}

func TestRecenter(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := pairs(0, 0, 10, 0, 10, 10, 0, 10)
	out, shift, err := Recenter(pts)
	if err != nil {
		t.Fatalf("Recenter failed: %v", err)
	}
	if !shift.Equal(scatter.P(-5, -5)) {
		t.Errorf("expected shift (-5,-5), got %v", shift)
	}
	box, _ := BoundingBox(out)
	assert.Equal(t, Box{X: -5, Y: -5, Width: 10, Height: 10}, box)
}

func TestRecenterIdempotent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := pairs(3, 1, 7, 2, 5, 9)
	once, _, err := Recenter(pts)
	if err != nil {
		t.Fatalf("Recenter failed: %v", err)
	}
	twice, shift, err := Recenter(once)
	if err != nil {
		t.Fatalf("Recenter failed: %v", err)
	}
	if !shift.Equal(scatter.Origin) {
		t.Errorf("second recenter must be a null shift, got %v", shift)
	}
	samePoints(t, twice, once)
}

func TestRecenterEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, _, err := Recenter(nil)
	if !errors.Is(err, ErrEmptyCloud) {
		t.Fatalf("expected ErrEmptyCloud, got %v", err)
	}
}

func TestScaleTranslate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := pairs(1, 1, 2, 2)
	samePoints(t, Scale(pts, 2), pairs(2, 2, 4, 4))
	samePoints(t, Translate(pts, scatter.P(-1, 3)), pairs(0, 4, 1, 5))
	// inputs stay untouched
	samePoints(t, pts, pairs(1, 1, 2, 2))
}
