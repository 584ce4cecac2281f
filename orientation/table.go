package orientation

// Table is a fixed-size map from Orientation to V with presence tracking.
// The zero value is an empty table. Table[V] is comparable whenever V is,
// which lets grids of tables be compared and deduplicated structurally.
type Table[V comparable] struct {
	values  [NumOrientations]V
	present [NumOrientations]bool
}

// Insert records v under o, replacing any previous entry.
// Complexity: O(1).
func (t *Table[V]) Insert(o Orientation, v V) {
	t.values[o] = v
	t.present[o] = true
}

// Get returns the entry recorded under o, and whether one exists.
// Complexity: O(1).
func (t Table[V]) Get(o Orientation) (V, bool) {
	return t.values[o], t.present[o]
}

// Len counts the recorded entries. Complexity: O(1) — the group is tiny.
func (t Table[V]) Len() int {
	n := 0
	for _, p := range t.present {
		if p {
			n++
		}
	}

	return n
}
