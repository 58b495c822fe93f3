package engine

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/polyfall/internal/catalog"
	"github.com/vovakirdan/polyfall/internal/poly"
)

func bagDefs(weights ...int) []catalog.Definition {
	cell := poly.Shape{{X: 0, Y: 0}}
	defs := make([]catalog.Definition, len(weights))
	for i, w := range weights {
		defs[i] = catalog.Definition{
			ID:        i,
			Cells:     cell,
			Rotations: [4]poly.Shape{cell, cell, cell, cell},
			Box:       catalog.Box{W: 1, H: 1},
			Weight:    w,
		}
	}
	return defs
}

func TestNewBagEmptyCatalog(t *testing.T) {
	if _, err := NewBag(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestBagUniformWithoutWeights(t *testing.T) {
	bag, err := NewBag(bagDefs(0, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))

	seen := map[int]int{}
	for i := 0; i < 300; i++ {
		id, next, err := bag.Next(rng)
		if err != nil {
			t.Fatal(err)
		}
		bag = next
		seen[id]++
	}
	for id := 0; id < 3; id++ {
		if seen[id] == 0 {
			t.Fatalf("piece %d never drawn: %v", id, seen)
		}
	}
	if len(bag.History()) != 0 {
		t.Fatalf("uniform draws recorded history: %v", bag.History())
	}
}

func TestBagWeightedDistribution(t *testing.T) {
	bag, err := NewBag(bagDefs(90, 10))
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))

	seen := map[int]int{}
	for i := 0; i < 1000; i++ {
		id, next, err := bag.Next(rng)
		if err != nil {
			t.Fatal(err)
		}
		bag = next
		seen[id]++
	}
	if seen[0] <= seen[1] {
		t.Fatalf("heavy piece not dominant: %v", seen)
	}
	if seen[1] == 0 {
		t.Fatalf("light piece starved out: %v", seen)
	}
}

func TestBagHistoryBounded(t *testing.T) {
	defs := bagDefs(1, 1, 1, 1, 1, 1)
	bag, err := NewBag(defs)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 20; i++ {
		_, next, err := bag.Next(rng)
		if err != nil {
			t.Fatal(err)
		}
		bag = next
	}
	// History holds at most min(10, catalog/2) entries.
	if got := len(bag.History()); got != 3 {
		t.Fatalf("history length = %d, want 3", got)
	}
}

func TestBagHistoryDecaysWeight(t *testing.T) {
	defs := bagDefs(10, 30, 60)
	bag, err := NewBag(defs)
	if err != nil {
		t.Fatal(err)
	}

	// A piece drawn once keeps 0.7 of its base weight, twice 0.49; pieces
	// outside the history keep their base weight.
	bag.history = []int{2}
	once := bag.effectiveWeight(defs[2])
	if want := 60 * math.Pow(historyDecay, 1); once != want {
		t.Fatalf("effectiveWeight after one draw = %v, want %v", once, want)
	}
	if got := bag.effectiveWeight(defs[0]); got != 10 {
		t.Fatalf("effectiveWeight of undrawn piece = %v, want 10", got)
	}

	bag.history = []int{2, 2}
	twice := bag.effectiveWeight(defs[2])
	if want := 60 * math.Pow(historyDecay, 2); twice != want {
		t.Fatalf("effectiveWeight after two draws = %v, want %v", twice, want)
	}
	if twice >= once {
		t.Fatal("repeated draws did not shrink the piece's weight")
	}
}

func TestBagZeroWeightNeverDrawn(t *testing.T) {
	// Zero-weight definitions in a weighted catalog are unreachable, even
	// when one sits at the end of the walk order.
	bag, err := NewBag(bagDefs(0, 5, 0))
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		id, next, err := bag.Next(rng)
		if err != nil {
			t.Fatal(err)
		}
		bag = next
		if id != 1 {
			t.Fatalf("drew zero-weight piece %d on iteration %d", id, i)
		}
	}
}

func TestBagDeterministic(t *testing.T) {
	defs := bagDefs(5, 3, 2, 7)

	draw := func(seed int64) []int {
		bag, err := NewBag(defs)
		if err != nil {
			t.Fatal(err)
		}
		rng := rand.New(rand.NewSource(seed))
		var out []int
		for i := 0; i < 50; i++ {
			id, next, err := bag.Next(rng)
			if err != nil {
				t.Fatal(err)
			}
			bag = next
			out = append(out, id)
		}
		return out
	}

	a, b := draw(42), draw(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestBagValueSemantics(t *testing.T) {
	bag, err := NewBag(bagDefs(5, 5))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := bag.Next(rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	// Drawing from the original bag again must not see the discarded draw's
	// history.
	if len(bag.History()) != 0 {
		t.Fatalf("Next mutated the receiver: history %v", bag.History())
	}
}
