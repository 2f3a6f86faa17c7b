package getbox

// New is the generic form of [Box.New]: it constructs a fresh T from p on
// every call, bypassing the cache entirely.
//
//	logger, err := getbox.New(b, Logger)
func New[T any](b *Box, p *Provider[T]) (T, error) {
	v, err := p.init(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Get is the generic form of [Box.Get]: it returns the instance cached under
// p's identity, constructing it on first use. It is the recommended way to
// resolve shared values:
//
//	logger, err := getbox.Get(b, Logger)
func Get[T any](b *Box, p *Provider[T]) (T, error) {
	v, err := b.Get(p)
	if err != nil || v == nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Mock is the generic form of [Box.Mock]: it installs v as the cached
// instance for p, so Get returns v without ever running p's initializer.
// Typically called from a test before the code under test first resolves p:
//
//	getbox.Mock(b, Database, &fakeDB{})
func Mock[T any](b *Box, p *Provider[T], v T) {
	b.Mock(p, v)
}
