// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
)

// Backend names.
const (
	BackendGonum    = "gonum"
	BackendOpenBLAS = "openblas"
)

// Backend is the narrow slice of a BLAS library the accelerated strategy
// depends on.
//
// Sgemm follows the row-major CBLAS contract
// C := alpha·op(A)·op(B) + beta·C, where op(A) is m×k, op(B) is k×n and
// lda/ldb/ldc are the row strides of the flat buffers.
//
// SetThreads applies a worker count process-wide and returns a function that
// restores the previous setting. A count below one leaves the setting alone.
type Backend interface {
	Name() string
	Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int)
	SetThreads(n int) (restore func())
}

// BackendFactory constructs a Backend. It may fail if the underlying library
// cannot be initialized.
type BackendFactory func() (Backend, error)

var registry = struct {
	sync.RWMutex
	m map[string]BackendFactory
}{m: map[string]BackendFactory{BackendGonum: newGonumBackend}}

// RegisterBackend makes a BLAS provider available under name.
// It panics if name is empty, factory is nil or name is already taken;
// registration happens from init functions, so these are programmer errors.
func RegisterBackend(name string, factory BackendFactory) {
	if name == "" || factory == nil {
		panic("kernel: RegisterBackend: empty name or nil factory")
	}
	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.m[name]; dup {
		panic("kernel: RegisterBackend: duplicate backend " + name)
	}
	registry.m[name] = factory
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.m))
	for name := range registry.m {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// LookupBackend constructs the backend registered under name.
// Errors:
//   - ErrBackendUnavailable if name is not registered or its factory fails.
func LookupBackend(name string) (Backend, error) {
	registry.RLock()
	factory, ok := registry.m[name]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q (registered: %v): %w", name, Backends(), ErrBackendUnavailable)
	}
	be, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %w", name, ErrBackendUnavailable, err)
	}

	return be, nil
}

// gonumBackend is the pure-Go BLAS from gonum. Its sgemm splits large
// products into blocks and works them on up to GOMAXPROCS goroutines, so
// the worker count is applied through runtime.GOMAXPROCS.
type gonumBackend struct {
	impl gonum.Implementation
}

func newGonumBackend() (Backend, error) { return gonumBackend{}, nil }

func (gonumBackend) Name() string { return BackendGonum }

func (g gonumBackend) Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	g.impl.Sgemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (gonumBackend) SetThreads(n int) func() {
	if n < 1 {
		return func() {}
	}
	prev := runtime.GOMAXPROCS(n)

	return func() { runtime.GOMAXPROCS(prev) }
}
