package types

// DefaultMap is a map that creates entries on first access with a
// user-provided constructor.
//
//	m := NewDefaultMap[uint64](func() Set[string] { return NewSet[string]() })
//	m.Get(42).Add("0xabc") // the set for key 42 is created on demand
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap returns an empty DefaultMap using defaultFunc to build missing
// values.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value stored for key, creating and storing a default one
// when absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if !ok {
		val = d.defaultFunc()
		d.data[key] = val
	}
	return val
}

// Lookup returns the value stored for key without creating a default entry.
func (d *DefaultMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := d.data[key]
	return val, ok
}

// Delete removes the entry for key, if any.
func (d *DefaultMap[K, V]) Delete(key K) {
	delete(d.data, key)
}

// Len returns the number of stored entries.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap exposes the underlying map. Deleting entries while ranging over it is
// allowed.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
