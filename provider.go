package getbox

// Resolver is the untyped view of a [Provider]. Every provider implements it
// regardless of its type parameter, which is what lets a [Builder] accept
// positional dependencies of mixed types and lets the [Box] key its cache by
// producer identity. The interface is sealed: only values created by
// [Define], [Value], or [Type] satisfy it.
type Resolver interface {
	// produce runs the provider's initializer against b.
	produce(b *Box) (any, error)
}

// Provider produces values of type T for a [Box].
//
// The provider value's own identity — its pointer — is the cache key. Two
// providers built from the same initializer are still distinct cache entries,
// so providers are normally declared once, as package-level variables, and
// shared by everything that depends on them.
type Provider[T any] struct {
	init func(b *Box) (T, error)
}

// Define wraps an initializer function as a provider. The initializer
// receives the box so it can resolve its own dependencies:
//
//	var Users = getbox.Define(func(b *getbox.Box) (*UserService, error) {
//		db, err := getbox.Get(b, Database)
//		if err != nil {
//			return nil, err
//		}
//		return &UserService{DB: db}, nil
//	})
func Define[T any](init func(b *Box) (T, error)) *Provider[T] {
	return &Provider[T]{init: init}
}

// Value wraps a constant as a provider. Its initializer ignores the box and
// returns v unchanged on every invocation.
func Value[T any](v T) *Provider[T] {
	return &Provider[T]{init: func(*Box) (T, error) { return v, nil }}
}

// Type is the zero-argument constructor form: a provider whose initializer
// allocates a fresh zero T and returns the pointer, equivalent to
// Define(func(*Box) (*T, error) { return new(T), nil }).
func Type[T any]() *Provider[*T] {
	return &Provider[*T]{init: func(*Box) (*T, error) { return new(T), nil }}
}

func (p *Provider[T]) produce(b *Box) (any, error) {
	v, err := p.init(b)
	if err != nil {
		return nil, err
	}
	return v, nil
}
