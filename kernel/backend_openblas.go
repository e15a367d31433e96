//go:build openblas && cgo

// SPDX-License-Identifier: MIT

package kernel

/*
#cgo LDFLAGS: -lopenblas -lm

// Row-major single-precision GEMM.
// C = alpha * op(A) * op(B) + beta * C, op(A) is M×K, op(B) is K×N.
void cblas_sgemm(
    int Order,      // 101=RowMajor, 102=ColMajor
    int TransA,     // 111=NoTrans, 112=Trans
    int TransB,
    int M,
    int N,
    int K,
    float alpha,
    const float *A,
    int lda,
    const float *B,
    int ldb,
    float beta,
    float *C,
    int ldc
);

void openblas_set_num_threads(int num_threads);
int openblas_get_num_threads(void);
*/
import "C"

import (
	"unsafe"

	"gonum.org/v1/gonum/blas"
)

const (
	cblasRowMajor  = 101
	cblasNoTrans   = 111
	cblasTrans     = 112
	cblasConjTrans = 113
)

func init() {
	RegisterBackend(BackendOpenBLAS, newOpenBLASBackend)
}

// openBLASBackend calls the system OpenBLAS through cgo.
// Build with: go build -tags openblas (requires libopenblas-dev).
type openBLASBackend struct{}

func newOpenBLASBackend() (Backend, error) { return openBLASBackend{}, nil }

func (openBLASBackend) Name() string { return BackendOpenBLAS }

func (openBLASBackend) Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	if m == 0 || n == 0 {
		return
	}
	C.cblas_sgemm(
		cblasRowMajor,
		C.int(cblasTranspose(tA)),
		C.int(cblasTranspose(tB)),
		C.int(m), C.int(n), C.int(k),
		C.float(alpha),
		(*C.float)(unsafe.Pointer(&a[0])), C.int(lda),
		(*C.float)(unsafe.Pointer(&b[0])), C.int(ldb),
		C.float(beta),
		(*C.float)(unsafe.Pointer(&c[0])), C.int(ldc),
	)
}

func (openBLASBackend) SetThreads(n int) func() {
	if n < 1 {
		return func() {}
	}
	prev := C.openblas_get_num_threads()
	C.openblas_set_num_threads(C.int(n))

	return func() { C.openblas_set_num_threads(prev) }
}

func cblasTranspose(t blas.Transpose) int {
	switch t {
	case blas.Trans:
		return cblasTrans
	case blas.ConjTrans:
		return cblasConjTrans
	default:
		return cblasNoTrans
	}
}
