package lootbox

import (
	"errors"
	"math/rand/v2"
)

// Reward is one entry from the catalog, revealed when a crate opens.
type Reward struct {
	ID   string
	Name string
}

// Catalog is a fixed, ordered sequence of reward definitions. It is loaded
// once at startup and immutable for the process lifetime.
type Catalog []Reward

// ErrEmptyCatalog indicates a misconfigured (empty) reward catalog. This is
// a startup error, never a runtime condition.
var ErrEmptyCatalog = errors.New("lootbox: reward catalog is empty")

// Picker draws uniformly random rewards from a fixed catalog, with
// replacement across calls.
type Picker struct {
	catalog Catalog
	rng     *rand.Rand
}

// NewPicker validates the catalog and returns a picker over a private copy
// of it. A nil rng falls back to a PCG source seeded from the global
// generator.
func NewPicker(catalog Catalog, rng *rand.Rand) (*Picker, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	snapshot := make(Catalog, len(catalog))
	copy(snapshot, catalog)
	return &Picker{catalog: snapshot, rng: rng}, nil
}

// Pick returns one reward selected uniformly at random.
func (p *Picker) Pick() Reward {
	return p.catalog[p.rng.IntN(len(p.catalog))]
}

// Size returns the number of entries in the picker's catalog.
func (p *Picker) Size() int {
	return len(p.catalog)
}
