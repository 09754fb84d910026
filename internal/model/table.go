package model

// table maps obfuscated simple names to entity IDs and remembers insertion order.
// Re-inserting an existing key replaces its ID in place, keeping the original position.
type table[ID comparable] struct {
	keys  []string
	index map[string]ID
}

func newTable[ID comparable]() table[ID] {
	return table[ID]{index: make(map[string]ID)}
}

func (t *table[ID]) put(key string, id ID) {
	if _, ok := t.index[key]; !ok {
		t.keys = append(t.keys, key)
	}

	t.index[key] = id
}

func (t *table[ID]) get(key string) (ID, bool) {
	id, ok := t.index[key]
	return id, ok
}

func (t *table[ID]) len() int {
	return len(t.keys)
}

// ids returns the IDs in insertion order.
func (t *table[ID]) ids() []ID {
	out := make([]ID, 0, len(t.keys))
	for _, key := range t.keys {
		out = append(out, t.index[key])
	}

	return out
}
