package easel

import "fmt"

// Env is a typed key/value environment threaded through the widget tree.
// The application seeds it at launch (e.g. named texture IDs); widgets
// read it during lifecycle and event handling.
type Env struct {
	values map[string]any
}

// Key names an Env entry holding a value of type V. Two keys with the
// same name must agree on V: a lookup through a mismatched key panics.
type Key[V any] struct {
	name string
}

// NewKey returns a typed key with the given name.
func NewKey[V any](name string) Key[V] {
	return Key[V]{name}
}

// Name returns the key name.
func (k Key[V]) Name() string {
	return k.name
}

// SetEnv stores a value under the key.
func SetEnv[V any](env *Env, key Key[V], value V) {
	if env.values == nil {
		env.values = make(map[string]any)
	}
	env.values[key.name] = value
}

// LookupEnv returns the value stored under the key. A missing key yields
// (zero, false). A value of the wrong type is a programming error and
// panics.
func LookupEnv[V any](env *Env, key Key[V]) (V, bool) {
	var zero V
	raw, ok := env.values[key.name]
	if !ok {
		return zero, false
	}
	v, ok := raw.(V)
	if !ok {
		panic(fmt.Sprintf("easel: env key %q holds %T, want %T", key.name, raw, zero))
	}
	return v, true
}
