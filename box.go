package getbox

import "sync"

// Box is the container: an identity-keyed cache of producer results. Use
// [NewBox] to create one. A box is created once by the application (or once
// per test) and lives as long as it does; entries are created on first
// request and never evicted.
//
// These methods are the untyped core. The generic [New], [Get], and [Mock]
// helpers wrap them and are the recommended call surface.
type Box struct {
	mu    sync.Mutex
	cache map[Resolver]*entry
}

// entry is one cache slot. done guards val: once a writer sets done under
// e.mu, val never changes again, so readers that observe done may return val.
type entry struct {
	mu   sync.Mutex
	done bool
	val  any
}

// NewBox creates an empty container.
func NewBox() *Box {
	return &Box{cache: make(map[Resolver]*entry)}
}

// New constructs a fresh instance from p on every call. The cache is neither
// read nor written — not even when the entry for p was mocked — and any error
// from the producer propagates unchanged.
func (b *Box) New(p Resolver) (any, error) {
	return p.produce(b)
}

// Get returns the cached instance for p, constructing and storing it on
// first use. For a given box and provider identity the producer runs at most
// once across any number of Get calls, concurrent ones included; every call
// returns the same instance. A failed construction is not cached, so the
// next Get retries it.
func (b *Box) Get(p Resolver) (any, error) {
	b.mu.Lock()
	e, ok := b.cache[p]
	if !ok {
		e = &entry{}
		b.cache[p] = e
	}
	b.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return e.val, nil
	}

	// Construction runs outside the box lock so the producer can resolve its
	// own dependencies through b. A dependency cycle therefore deadlocks on
	// the entry lock rather than erroring: cycles are unsupported.
	v, err := p.produce(b)
	if err != nil {
		// The not-done placeholder stays in the map: waiters blocked on this
		// entry and later callers all retry construction through it, which
		// keeps successful construction at-most-once per identity.
		return nil, err
	}

	e.val = v
	e.done = true
	return v, nil
}

// Mock force-writes the cache entry for p, replacing any cached instance and
// pre-empting construction: after Mock, Get returns v without ever running
// the producer. Intended for tests. Prefer the generic [Mock] helper, which
// keeps v's type consistent with p's.
func (b *Box) Mock(p Resolver, v any) {
	b.mu.Lock()
	b.cache[p] = &entry{done: true, val: v}
	b.mu.Unlock()
}
