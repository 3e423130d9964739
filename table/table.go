package table

import "ultimate/game"

// DefaultCapacity is the number of slots a new table starts with.
const DefaultCapacity = 1024

// maxLoad is the fraction of slots (live or tombstoned) allowed before the
// table doubles.
const maxLoad = 0.7

type slotKind uint8

const (
	empty slotKind = iota
	tombstone
	occupied
)

type key struct {
	game game.Game
	turn game.Slot
}

type entry struct {
	kind  slotKind
	hash  uint64
	key   key
	value int
}

// Table is an open-addressing hash map from (game, side to move) to a score,
// indexed by the Zobrist hash and probed linearly. Deleted slots become
// tombstones so the probe chains running through them stay intact.
//
// A Table is not safe for concurrent use.
type Table struct {
	zobrist *Zobrist
	entries []entry
	used    int // occupied and tombstoned slots
	live    int // occupied slots
}

func New(z *Zobrist) *Table {
	return NewWithCapacity(z, DefaultCapacity)
}

func NewWithCapacity(z *Zobrist, capacity int) *Table {
	if capacity < 1 {
		capacity = 1
	}
	return &Table{
		zobrist: z,
		entries: make([]entry, capacity),
	}
}

// Len returns the number of live entries.
func (t *Table) Len() int { return t.live }

// Cap returns the number of slots.
func (t *Table) Cap() int { return len(t.entries) }

// Insert stores value for (g, turn). It returns true if the key was new and
// false if an existing value was replaced.
func (t *Table) Insert(g game.Game, turn game.Slot, value int) bool {
	k := key{game: g, turn: turn}
	h := t.zobrist.Hash(&g, turn)
	idx, found := t.find(h, &k)
	if !found && t.full() {
		t.resize()
		idx, _ = t.find(h, &k)
	}
	t.store(idx, found, entry{kind: occupied, hash: h, key: k, value: value})
	return !found
}

// GetOrInsert returns the value stored for (g, turn), or stores and returns
// evaluate(&g, turn) if there is none. The bool reports whether the value was
// already present. The key is hashed once either way.
func (t *Table) GetOrInsert(g game.Game, turn game.Slot, evaluate game.Evaluate) (int, bool) {
	k := key{game: g, turn: turn}
	h := t.zobrist.Hash(&g, turn)
	idx, found := t.find(h, &k)
	if found {
		return t.entries[idx].value, true
	}

	value := evaluate(&g, turn)
	if t.full() {
		t.resize()
		idx, _ = t.find(h, &k)
	}
	t.store(idx, false, entry{kind: occupied, hash: h, key: k, value: value})
	return value, false
}

// Get returns the value stored for (g, turn).
func (t *Table) Get(g game.Game, turn game.Slot) (int, bool) {
	k := key{game: g, turn: turn}
	idx, found := t.find(t.zobrist.Hash(&g, turn), &k)
	if !found {
		return 0, false
	}
	return t.entries[idx].value, true
}

// Delete removes (g, turn) and returns the value it held.
func (t *Table) Delete(g game.Game, turn game.Slot) (int, bool) {
	k := key{game: g, turn: turn}
	idx, found := t.find(t.zobrist.Hash(&g, turn), &k)
	if !found {
		return 0, false
	}
	value := t.entries[idx].value
	t.entries[idx] = entry{kind: tombstone}
	t.live--
	return value, true
}

// full reports whether claiming one more slot would exceed maxLoad.
func (t *Table) full() bool {
	return float64(t.used+1) > float64(len(t.entries))*maxLoad
}

func (t *Table) store(idx int, replace bool, e entry) {
	if !replace {
		if t.entries[idx].kind == empty {
			t.used++
		}
		t.live++
	}
	t.entries[idx] = e
}

// find walks the probe chain of hash h. It returns the slot holding k, or if k
// is absent the slot an insert should use: the first tombstone on the chain,
// else the empty slot that ended it. Stored hashes are compared before keys.
func (t *Table) find(h uint64, k *key) (int, bool) {
	idx := int(h % uint64(len(t.entries)))
	tomb := -1
	for {
		e := &t.entries[idx]
		switch e.kind {
		case empty:
			if tomb >= 0 {
				return tomb, false
			}
			return idx, false
		case tombstone:
			if tomb < 0 {
				tomb = idx
			}
		case occupied:
			if e.hash == h && e.key == *k {
				return idx, true
			}
		}
		idx = (idx + 1) % len(t.entries)
	}
}

func (t *Table) index(g *game.Game, turn game.Slot) int {
	return int(t.zobrist.Hash(g, turn) % uint64(len(t.entries)))
}

// resize doubles the slot count and reinserts the live entries by their
// stored hash. Tombstones are dropped.
func (t *Table) resize() {
	old := t.entries
	t.entries = make([]entry, len(old)*2)
	t.used, t.live = 0, 0

	for _, e := range old {
		if e.kind != occupied {
			continue
		}
		idx := int(e.hash % uint64(len(t.entries)))
		for t.entries[idx].kind != empty {
			idx = (idx + 1) % len(t.entries)
		}
		t.entries[idx] = e
		t.used++
		t.live++
	}
}
