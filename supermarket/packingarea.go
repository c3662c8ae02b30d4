package supermarket

import "sync"

// PackingArea is the fixed-capacity circular store shared between cashiers
// and packers. It serializes its own mutation and keeps the running totals
// in the same critical section as the indices. It knows nothing about the
// semaphores that keep callers from writing into a full area or reading
// from an empty one; that discipline lives in the worker loops.
type PackingArea struct {
	mu       sync.Mutex
	items    []Item
	in       int
	out      int
	produced int
	consumed int
}

// NewPackingArea creates a packing area with the given number of slots.
// A capacity below one is a programmer error and panics.
func NewPackingArea(capacity int) *PackingArea {
	if capacity < 1 {
		panic("supermarket: packing area needs at least one slot")
	}
	return &PackingArea{items: make([]Item, capacity)}
}

// Capacity returns the slot count.
func (pa *PackingArea) Capacity() int { return len(pa.items) }

// Enqueue stores it at the write index and advances the index circularly.
// It returns the occupancy right after the insert, captured inside the same
// critical section so callers can log a consistent snapshot.
func (pa *PackingArea) Enqueue(it Item) int {
	pa.mu.Lock()
	defer pa.mu.Unlock()
	pa.items[pa.in] = it
	pa.in = (pa.in + 1) % len(pa.items)
	pa.produced++
	return pa.occupied()
}

// Dequeue removes the item at the read index and advances the index
// circularly. It returns the item and the occupancy right after the removal.
func (pa *PackingArea) Dequeue() (Item, int) {
	pa.mu.Lock()
	defer pa.mu.Unlock()
	it := pa.items[pa.out]
	pa.out = (pa.out + 1) % len(pa.items)
	pa.consumed++
	return it, pa.occupied()
}

// occupied reports the number of items currently stored. The circular
// distance (in − out + cap) % cap reads zero when the area is full, so the
// count is derived from the running totals instead; both are updated under
// the same mutex and agree in every non-full state.
func (pa *PackingArea) occupied() int {
	return pa.produced - pa.consumed
}

// Occupancy returns the number of items currently stored.
func (pa *PackingArea) Occupancy() int {
	pa.mu.Lock()
	defer pa.mu.Unlock()
	return pa.occupied()
}

// Totals returns the monotonic produced and consumed counters as one
// consistent snapshot.
func (pa *PackingArea) Totals() (produced, consumed int) {
	pa.mu.Lock()
	defer pa.mu.Unlock()
	return pa.produced, pa.consumed
}
