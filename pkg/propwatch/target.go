package propwatch

// Target is the raw keyed storage a Container wraps. A Target is dumb: it
// does not notify, validate, or report failure. Store and Delete are allowed
// to silently refuse (a frozen target does exactly that); the wrapper
// discovers refusal by reading the member back.
type Target[K comparable, V any] interface {
	// Load returns the value stored under key, if any.
	Load(key K) (V, bool)

	// Store sets the value under key. It may silently drop the write.
	Store(key K, value V)

	// Delete removes key. It may silently refuse.
	Delete(key K)

	// Len returns the number of stored members.
	Len() int

	// Keys returns the stored keys in unspecified order.
	Keys() []K
}

// mapTarget is the default map-backed Target.
type mapTarget[K comparable, V any] struct {
	entries map[K]V
}

// NewMapTarget creates a map-backed Target seeded with a copy of initial.
// A nil initial map yields an empty target.
func NewMapTarget[K comparable, V any](initial map[K]V) Target[K, V] {
	entries := make(map[K]V, len(initial))
	for k, v := range initial {
		entries[k] = v
	}
	return &mapTarget[K, V]{entries: entries}
}

func (t *mapTarget[K, V]) Load(key K) (V, bool) {
	v, ok := t.entries[key]
	return v, ok
}

func (t *mapTarget[K, V]) Store(key K, value V) {
	t.entries[key] = value
}

func (t *mapTarget[K, V]) Delete(key K) {
	delete(t.entries, key)
}

func (t *mapTarget[K, V]) Len() int {
	return len(t.entries)
}

func (t *mapTarget[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

// frozenTarget passes reads through and silently drops writes.
type frozenTarget[K comparable, V any] struct {
	target Target[K, V]
}

// Freeze returns a read-only view of t. Store and Delete on the view are
// silently dropped, so through a Container the refusal surfaces as a false
// return from Set or Delete. Writing a member the value it already holds
// still echoes back and therefore still succeeds.
func Freeze[K comparable, V any](t Target[K, V]) Target[K, V] {
	return &frozenTarget[K, V]{target: t}
}

func (f *frozenTarget[K, V]) Load(key K) (V, bool) { return f.target.Load(key) }
func (f *frozenTarget[K, V]) Store(key K, value V) {}
func (f *frozenTarget[K, V]) Delete(key K)         {}
func (f *frozenTarget[K, V]) Len() int             { return f.target.Len() }
func (f *frozenTarget[K, V]) Keys() []K            { return f.target.Keys() }
