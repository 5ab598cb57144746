package cloud

import (
	"errors"
	"testing"

	"github.com/npillmayer/scatter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// stripBoundary builds two horizontal point rows at unit spacing, two
// units apart. Any triangulation of the strip keeps the vertical edges
// between the rows, whose length 2 falls into the fill band used below,
// and whose midpoints keep unit distance to everything else.
func stripBoundary() []scatter.Pair {
	var pts []scatter.Pair
	for i := 0; i <= 10; i++ {
		pts = append(pts, scatter.P(float64(i), 0))
	}
	for i := 0; i <= 10; i++ {
		pts = append(pts, scatter.P(float64(i), 2))
	}
	return pts
}

func TestTessellateBandFilter(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// one stub triangle with edge lengths 3, 4, 5
	pts := pairs(0, 0, 3, 0, 3, 4)
	stub := func([]scatter.Pair) ([]int, error) {
		return []int{0, 1, 2}, nil
	}
	edges, err := Tessellate(pts, 3.5, 6, stub)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("expected the 4- and 5-edges to survive, got %d edges", len(edges))
	}
	for _, e := range edges {
		d := e.LengthSq()
		if d <= 3.5*3.5 || d >= 36 {
			t.Errorf("edge of squared length %g escaped the band", d)
		}
	}
}

func TestTessellateBandIsOpen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := pairs(0, 0, 3, 0, 3, 4)
	stub := func([]scatter.Pair) ([]int, error) {
		return []int{0, 1, 2}, nil
	}
	// band endpoints equal to edge lengths: strict comparison drops them
	edges, err := Tessellate(pts, 3, 5, stub)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(edges) != 1 || !scatter.Is0(edges[0].LengthSq()-16) {
		t.Fatalf("expected only the 4-edge inside the open band (3,5), got %v", edges)
	}
}

func TestTessellateRequiresTriangulator(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Tessellate(pairs(0, 0, 1, 0, 0, 1), 0, 1, nil)
	if !errors.Is(err, ErrNoTriangulator) {
		t.Fatalf("expected ErrNoTriangulator, got %v", err)
	}
}

func TestFillDensifies(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	boundary := stripBoundary()
	filled, err := Fill(boundary, 1, 3, 1, Delaunay)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if len(filled) <= len(boundary) {
		t.Fatalf("fill must add interior points: %d before, %d after",
			len(boundary), len(filled))
	}
	for i := 0; i < len(filled); i++ {
		for j := i + 1; j < len(filled); j++ {
			if scatter.Dist(filled[i], filled[j]) < 1-1e-9 {
				t.Fatalf("points %d and %d closer than spacing: %v %v",
					i, j, filled[i], filled[j])
			}
		}
	}
}

func TestFillRepeatable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := stripBoundary()
	var err error
	for i := 0; i < 3; i++ {
		pts, err = Fill(pts, 0.5, 3, 0.5, Delaunay)
		if err != nil {
			t.Fatalf("Fill pass %d failed: %v", i, err)
		}
	}
	if len(pts) <= len(stripBoundary()) {
		t.Fatalf("repeated fills must densify the cloud, got %d points", len(pts))
	}
}

func TestFillEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Fill(nil, 1, 3, 1, Delaunay)
	if !errors.Is(err, ErrEmptyCloud) {
		t.Fatalf("expected ErrEmptyCloud, got %v", err)
	}
}

func TestFillPropagatesTriangulatorError(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	boom := errors.New("triangulation failed")
	failing := func([]scatter.Pair) ([]int, error) {
		return nil, boom
	}
	_, err := Fill(pairs(0, 0, 1, 0, 0, 1), 0, 9, 1, failing)
	if !errors.Is(err, boom) {
		t.Fatalf("expected triangulator error to propagate, got %v", err)
	}
}
