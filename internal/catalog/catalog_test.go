package catalog

import (
	"testing"

	"github.com/vovakirdan/polyfall/internal/poly"
)

func TestCuratedTetrominoes(t *testing.T) {
	defs, err := Definitions(4)
	if err != nil {
		t.Fatalf("Definitions(4): %v", err)
	}

	if len(defs) != 7 {
		t.Fatalf("got %d tetrominoes, want 7", len(defs))
	}

	for _, d := range defs {
		if d.Weight <= 0 {
			t.Errorf("piece %s has no spawn weight", d.Name)
		}
		if len(d.Cells) != 4 {
			t.Errorf("piece %s has %d cells, want 4", d.Name, len(d.Cells))
		}
	}

	if !Weighted(defs) {
		t.Error("tetromino catalog should be weighted")
	}

	// Straight piece carries the highest weight
	var iWeight, maxOther int
	for _, d := range defs {
		if d.Name == "I" {
			iWeight = d.Weight
		} else if d.Weight > maxOther {
			maxOther = d.Weight
		}
	}
	if iWeight <= maxOther {
		t.Errorf("I weight %d should exceed other weights (max %d)", iWeight, maxOther)
	}
}

func TestDerivedPentominoes(t *testing.T) {
	defs, err := Definitions(5)
	if err != nil {
		t.Fatalf("Definitions(5): %v", err)
	}

	// 12 distinct free pentominoes
	if len(defs) != 12 {
		t.Fatalf("got %d pentominoes, want 12", len(defs))
	}

	for i, d := range defs {
		if d.ID != i {
			t.Errorf("piece %d has id %d", i, d.ID)
		}
		if d.Weight != 0 {
			t.Errorf("derived piece %s should be unweighted", d.Name)
		}
		if d.Box.W <= 0 || d.Box.H <= 0 {
			t.Errorf("piece %s has degenerate box %+v", d.Name, d.Box)
		}
	}

	if Weighted(defs) {
		t.Error("derived catalog should not be weighted")
	}
}

func TestRotationStates(t *testing.T) {
	defs, err := Definitions(4)
	if err != nil {
		t.Fatal(err)
	}

	for _, d := range defs {
		if !d.Rotations[0].Equal(d.Cells) {
			t.Errorf("piece %s: rotation 0 differs from spawn cells", d.Name)
		}
		// Chained clockwise rotations must return to the spawn orientation
		back := poly.RotatePiece(d.Rotations[3], true)
		if !back.Equal(d.Rotations[0]) {
			t.Errorf("piece %s: rotations do not cycle", d.Name)
		}
	}
}

func TestCatalogCached(t *testing.T) {
	c := New(poly.NewGenerator())

	a, err := c.Definitions(5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Definitions(5)
	if err != nil {
		t.Fatal(err)
	}
	if &a[0] != &b[0] {
		t.Error("Definitions(5) was rebuilt instead of served from cache")
	}
}

func TestInvalidSizes(t *testing.T) {
	if _, err := Definitions(0); err == nil {
		t.Error("Definitions(0) should fail")
	}
	if _, err := Definitions(10); err == nil {
		t.Error("Definitions(10) should fail")
	}
}

func TestTruncateBoundsLargeCatalogs(t *testing.T) {
	c := New(poly.NewGenerator())
	defs, err := c.Definitions(8)
	if err != nil {
		t.Fatal(err)
	}

	// 369 octominoes exist; the limiter caps the catalog
	if len(defs) != maxCatalogSize {
		t.Errorf("octomino catalog size = %d, want %d", len(defs), maxCatalogSize)
	}

	// Truncation is deterministic
	again, err := New(poly.NewGenerator()).Definitions(8)
	if err != nil {
		t.Fatal(err)
	}
	for i := range defs {
		if !defs[i].Cells.Equal(again[i].Cells) {
			t.Errorf("truncated catalog not stable at index %d", i)
		}
	}
}

func TestPieceColorsDeterministic(t *testing.T) {
	for i := 0; i < 40; i++ {
		if pieceColor(i) != pieceColor(i) {
			t.Fatalf("pieceColor(%d) not stable", i)
		}
	}
	// Colors repeat by hue but vary by shade once the palette is exhausted
	if pieceColor(0) == pieceColor(len(palette)) {
		t.Error("expected a different shade after palette wrap")
	}
}
