package memory

import "encoding/json"

// table is an id-keyed map that remembers insertion order for listings.
type table[T any] struct {
	order []string
	rows  map[string]*T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]*T)}
}

func (t *table[T]) put(id string, v *T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) get(id string) (*T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// find returns the first row, in insertion order, matching keep.
func (t *table[T]) find(keep func(*T) bool) *T {
	for _, id := range t.order {
		if v := t.rows[id]; keep(v) {
			return v
		}
	}
	return nil
}

// filter returns copies of every row matching keep, in insertion order.
func (t *table[T]) filter(keep func(*T) bool) []T {
	out := make([]T, 0)
	for _, id := range t.order {
		if v := t.rows[id]; keep == nil || keep(v) {
			out = append(out, *clone(v))
		}
	}
	return out
}

// clone deep-copies v so callers never alias stored rows.
func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		c := *v
		return &c
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		c := *v
		return &c
	}
	return &out
}
