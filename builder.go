package getbox

import (
	"fmt"
	"reflect"
)

// Builder pairs a box with one target constructor. It holds no other state
// and writes no cache entries for its target: every [Builder.New] or
// [Builder.Get] call builds a fresh T. Builders may be created and discarded
// freely; see [For].
type Builder[T any] struct {
	box  *Box
	ctor reflect.Value
}

// For returns a builder that constructs T by calling constructor with
// positionally resolved dependencies. The constructor must be a function of
// the form func(dep1, …, depN) T or func(dep1, …, depN) (T, error). Arity,
// order, and parameter types must match the providers later passed to
// [Builder.New] or [Builder.Get]; mismatches are not validated here and
// surface as the reflect runtime's own panic when the builder runs.
func For[T any](b *Box, constructor any) *Builder[T] {
	return &Builder[T]{box: b, ctor: reflect.ValueOf(constructor)}
}

// New resolves every dependency transiently (via [Box.New]) and calls the
// constructor with the results in order. Neither the dependencies nor the
// returned instance touch the cache.
func (bl *Builder[T]) New(deps ...Resolver) (T, error) {
	return bl.construct((*Box).New, deps)
}

// Get resolves every dependency through the cache (via [Box.Get]) and calls
// the constructor with the results in order. Dependencies are the shared
// cached instances, but the returned target is still built fresh on every
// call and never cached itself.
func (bl *Builder[T]) Get(deps ...Resolver) (T, error) {
	return bl.construct((*Box).Get, deps)
}

func (bl *Builder[T]) construct(resolve func(*Box, Resolver) (any, error), deps []Resolver) (T, error) {
	var zero T

	ctorType := bl.ctor.Type()
	args := make([]reflect.Value, len(deps))
	for i, dep := range deps {
		v, err := resolve(bl.box, dep)
		if err != nil {
			return zero, err
		}
		if v == nil {
			// Typed zero so Call accepts a nil-producing provider.
			args[i] = reflect.Zero(ctorType.In(i))
			continue
		}
		args[i] = reflect.ValueOf(v)
	}

	results := bl.ctor.Call(args)
	if len(results) == 2 && !results[1].IsNil() {
		return zero, results[1].Interface().(error)
	}

	result := results[0]
	if result.Kind() == reflect.Interface && result.IsNil() {
		return zero, nil
	}
	out, ok := result.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("cannot convert %s to %s", result.Type(), reflect.TypeOf((*T)(nil)).Elem())
	}
	return out, nil
}
