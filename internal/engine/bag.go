package engine

import (
	"errors"
	"math"
	"math/rand"

	"github.com/vovakirdan/polyfall/internal/catalog"
)

// historyDecay is the per-occurrence weight multiplier for recently drawn
// pieces: a piece drawn twice in recent history keeps 0.49 of its base weight.
const historyDecay = 0.7

// ErrEmptyCatalog is returned when a bag is built from or asked to draw from
// an empty piece catalog.
var ErrEmptyCatalog = errors.New("engine: piece catalog is empty")

// Bag selects the next piece. For weighted catalogs it decays the weight of
// recently emitted pieces to curb repetition; for unweighted catalogs it is a
// plain uniform draw with no history. Bag is a value type: Next returns the
// updated bag.
type Bag struct {
	defs       []catalog.Definition
	history    []int // most recent first
	maxHistory int
}

// NewBag creates a bag over the given catalog.
func NewBag(defs []catalog.Definition) (Bag, error) {
	if len(defs) == 0 {
		return Bag{}, ErrEmptyCatalog
	}
	return Bag{
		defs:       defs,
		maxHistory: min(10, len(defs)/2),
	}, nil
}

// History returns the recently emitted piece ids, most recent first.
func (b Bag) History() []int {
	out := make([]int, len(b.history))
	copy(out, b.history)
	return out
}

// Next draws one piece id. The rng is caller-owned so the engine controls
// determinism.
func (b Bag) Next(rng *rand.Rand) (int, Bag, error) {
	if len(b.defs) == 0 {
		return 0, b, ErrEmptyCatalog
	}

	if !catalog.Weighted(b.defs) {
		// Uniform selection, no history tracked.
		return b.defs[rng.Intn(len(b.defs))].ID, b, nil
	}

	total := 0.0
	for _, d := range b.defs {
		total += b.effectiveWeight(d)
	}

	// Cumulative-weight sampling: walk definitions subtracting weight until
	// the draw is exhausted. Zero-weight entries can never win, including in
	// the rounding fallback, which takes the last positive-weight definition.
	u := rng.Float64() * total
	chosen := -1
	for _, d := range b.defs {
		w := b.effectiveWeight(d)
		if w > 0 {
			chosen = d.ID
		}
		u -= w
		if u < 0 && w > 0 {
			break
		}
	}
	if chosen < 0 {
		return 0, b, ErrEmptyCatalog
	}

	b.history = append([]int{chosen}, b.history...)
	if len(b.history) > b.maxHistory {
		b.history = b.history[:b.maxHistory]
	}
	return chosen, b, nil
}

// effectiveWeight is the base weight decayed once per recent occurrence.
func (b Bag) effectiveWeight(d catalog.Definition) float64 {
	occurrences := 0
	for _, id := range b.history {
		if id == d.ID {
			occurrences++
		}
	}
	return float64(d.Weight) * math.Pow(historyDecay, float64(occurrences))
}
