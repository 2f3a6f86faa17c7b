// Package getbox provides a small lazy dependency-injection container.
//
// A [Box] maps providers to instances by the provider value's identity:
// the first cached resolution of a provider runs its initializer and stores
// the result, and every later resolution of that same provider returns the
// stored instance. There is no registration phase and no graph validation —
// dependencies are stated explicitly inside each initializer, which receives
// the box and resolves whatever it needs.
//
// # Quick Start
//
//	var Config = getbox.Value(&AppConfig{Addr: ":8080"})
//
//	var Logger = getbox.Define(func(b *getbox.Box) (*log.Logger, error) {
//		cfg, err := getbox.Get(b, Config)
//		if err != nil {
//			return nil, err
//		}
//		return log.New(os.Stderr, cfg.Addr+" ", 0), nil
//	})
//
//	b := getbox.NewBox()
//	logger, err := getbox.Get(b, Logger)
//
// # Providers
//
// [Define] wraps an initializer function, [Value] wraps a constant, and
// [Type] default-constructs a type with new. All three produce a
// [Provider], and the provider's pointer is its cache identity: two
// providers with identical behavior still cache separately.
//
// # Cached vs Transient
//
// [Get] memoizes: for one box, a provider's initializer runs at most once,
// no matter how many call sites resolve it. [New] never reads or writes the
// cache and constructs a fresh instance on every call.
//
// # Scoped Builders
//
// [For] pairs a box with a multi-argument constructor. The builder's Get
// resolves each positional dependency through the cache; its New resolves
// each one fresh. The constructed target itself is never cached by either.
//
//	users := getbox.For[*UserService](b, NewUserService)
//	svc, err := users.Get(Store, Logger)
//
// # Mocking
//
// [Mock] force-writes a cache entry, so a test can substitute a value before
// (or after) anything resolves the provider; once mocked, the provider's
// initializer never runs for cached resolution.
//
// # Limitations
//
// A box is safe for concurrent use, and cached construction stays
// at-most-once under concurrent first access. Dependency cycles between
// providers are unsupported and undetected: a cycle deadlocks inside Get.
// There is no lifecycle or teardown management; entries live until the box
// is garbage collected.
package getbox
