package getbox

import (
	"go.uber.org/atomic"
)

// Shared test types and provider factories used across test files. Providers
// carry identity, so each test builds fresh ones instead of sharing
// package-level variables between tests.

type testConfig struct{ DSN string }

type testLogger struct{ Prefix string }

type testStore struct {
	Config *testConfig
	Logger *testLogger
}

type testService struct {
	Store  *testStore
	Logger *testLogger
}

type testGreeter interface {
	Greet() string
}

type testEnglishGreeter struct{}

func (g *testEnglishGreeter) Greet() string { return "hello" }

// countingLogger returns a logger provider plus a counter of how many times
// its initializer ran.
func countingLogger() (*Provider[*testLogger], *atomic.Int64) {
	calls := atomic.NewInt64(0)
	p := Define(func(*Box) (*testLogger, error) {
		calls.Inc()
		return &testLogger{Prefix: "app"}, nil
	})
	return p, calls
}

// countingConfig is countingLogger for *testConfig.
func countingConfig() (*Provider[*testConfig], *atomic.Int64) {
	calls := atomic.NewInt64(0)
	p := Define(func(*Box) (*testConfig, error) {
		calls.Inc()
		return &testConfig{DSN: "postgres://localhost"}, nil
	})
	return p, calls
}

// storeProvider builds a store provider whose initializer resolves both
// dependencies through the cache.
func storeProvider(config *Provider[*testConfig], logger *Provider[*testLogger]) *Provider[*testStore] {
	return Define(func(b *Box) (*testStore, error) {
		cfg, err := Get(b, config)
		if err != nil {
			return nil, err
		}
		log, err := Get(b, logger)
		if err != nil {
			return nil, err
		}
		return &testStore{Config: cfg, Logger: log}, nil
	})
}

func newTestService(store *testStore, logger *testLogger) *testService {
	return &testService{Store: store, Logger: logger}
}
