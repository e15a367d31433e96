package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tmmbench/kernel"
)

func TestNewSelectsVariant(t *testing.T) {
	for _, name := range kernel.Variants() {
		m, err := kernel.New(name, kernel.WithThreads(1))
		require.NoError(t, err, name)
		assert.Equal(t, name, m.Name())
	}
}

func TestNewUnknownVariant(t *testing.T) {
	_, err := kernel.New("strassen")
	require.ErrorIs(t, err, kernel.ErrUnknownVariant)
}

// TestStrategiesAgreeOnFilledInputs runs both strategies behind the shared interface.
func TestStrategiesAgreeOnFilledInputs(t *testing.T) {
	const n = 16
	results := make(map[string][]float32)
	for _, name := range kernel.Variants() {
		m, err := kernel.New(name, kernel.WithThreads(2))
		require.NoError(t, err)
		a, b, c := filledInputs(t, n)
		_, err = m.Multiply(a, b, c)
		require.NoError(t, err)
		results[name] = c.Raw()
	}
	require.Equal(t, results[kernel.VariantTriangular], results[kernel.VariantAccelerated])
}
