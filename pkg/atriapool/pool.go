// Package atriapool pools atriasearch.Context values so a query-heavy
// caller (a batch job, a request handler) can borrow pre-allocated query
// scratch state instead of constructing it per call.
//
// Usage:
//
//	ctx := atriapool.ForTree(tree, k)
//	defer atriapool.Release(tree, k, ctx)
//	neighbors, err := atriasearch.KNN(tree, ctx, query, k)
package atriapool

import (
	"sync"

	"github.com/orneryd/atria/internal/atrialog"
	"github.com/orneryd/atria/pkg/atriasearch"
	"github.com/orneryd/atria/pkg/atriatree"
)

// Config configures pooling behavior.
type Config struct {
	// Enabled controls whether Get/Put actually pool, or bypass the pool
	// entirely (Get always allocates fresh, Put always discards).
	Enabled bool

	// MaxPQCapacity bounds the priority-queue capacity a Context may have
	// and still be pooled — Contexts above this are likely a one-off
	// query against an unusually deep tree, and pooling them would let a
	// single outlier retain oversized memory indefinitely.
	MaxPQCapacity int
}

var defaultConfig = Config{Enabled: true, MaxPQCapacity: 4096}

var (
	mu     sync.RWMutex
	global = defaultConfig
	pools  = map[poolKey]*sync.Pool{}
)

type poolKey struct {
	pqCapacity int
	k          int
}

// Configure sets the global pooling configuration. Should be called once
// during initialization, before any Get/Put.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	global = cfg
	pools = map[poolKey]*sync.Pool{}
}

// IsEnabled reports whether pooling is currently active.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return global.Enabled
}

// Get returns a Context sized for pqCapacity and k, reused from the pool
// when one is available. Every Context returned for the same
// (pqCapacity, k) key is interchangeable; callers must not assume a
// specific instance.
func Get(pqCapacity, k int) *atriasearch.Context {
	if !IsEnabled() {
		return atriasearch.NewContext(pqCapacity, k)
	}
	key := poolKey{pqCapacity, k}
	p := poolFor(key)
	return p.Get().(*atriasearch.Context)
}

// Put returns ctx to the pool it was drawn from, keyed by the same
// (pqCapacity, k) it was obtained with. A Context built directly via
// atriasearch.NewContext (never through Get) may still be Put — it will
// simply seed that key's pool.
func Put(pqCapacity, k int, ctx *atriasearch.Context) {
	if ctx == nil || !IsEnabled() {
		return
	}
	mu.RLock()
	maxCap := global.MaxPQCapacity
	mu.RUnlock()
	if pqCapacity > maxCap {
		atrialog.Debugf("atriapool: discarding Context with pqCapacity %d above MaxPQCapacity %d", pqCapacity, maxCap)
		return
	}
	key := poolKey{pqCapacity, k}
	poolFor(key).Put(ctx)
}

func poolFor(key poolKey) *sync.Pool {
	mu.RLock()
	p, ok := pools[key]
	mu.RUnlock()
	if ok {
		return p
	}

	mu.Lock()
	defer mu.Unlock()
	if p, ok := pools[key]; ok {
		return p
	}
	p = &sync.Pool{New: func() any {
		return atriasearch.NewContext(key.pqCapacity, key.k)
	}}
	pools[key] = p
	return p
}

// ForTree returns a pooled Context sized by atriasearch.EstimatePQCapacity
// for tree, with neighbor-heap capacity k.
func ForTree(tree *atriatree.Tree, k int) *atriasearch.Context {
	return Get(atriasearch.EstimatePQCapacity(tree), k)
}

// Release returns a Context obtained from ForTree(tree, k) to its pool.
func Release(tree *atriatree.Tree, k int, ctx *atriasearch.Context) {
	Put(atriasearch.EstimatePQCapacity(tree), k, ctx)
}
