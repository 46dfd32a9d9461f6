package truss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_IdentityStability(t *testing.T) {
	var r registry
	builds := 0

	factory := func() (any, error) {
		builds++
		return &Points{}, nil
	}

	first, err := r.get("Points", factory)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := r.get("Points", factory)
		require.NoError(t, err)
		assert.Same(t, first, again)
	}
	assert.Equal(t, 1, builds, "factory must run exactly once")
}

func TestRegistry_DistinctKeys(t *testing.T) {
	var r registry

	a, err := r.get("Points", func() (any, error) { return &Points{}, nil })
	require.NoError(t, err)
	b, err := r.get("Frames", func() (any, error) { return &Frames{}, nil })
	require.NoError(t, err)

	assert.NotSame(t, any(a), any(b))
}

// TestRegistry_FactoryFailureNotCached verifies a failed construction is
// retried from scratch on the next lookup.
func TestRegistry_FactoryFailureNotCached(t *testing.T) {
	var r registry
	attempts := 0

	factory := func() (any, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("construction failed")
		}
		return &Stories{}, nil
	}

	_, err := r.get("Stories", factory)
	require.Error(t, err)

	m, err := r.get("Stories", factory)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 2, attempts)

	// The successful instance is now cached.
	again, err := r.get("Stories", factory)
	require.NoError(t, err)
	assert.Same(t, m, again)
	assert.Equal(t, 2, attempts)
}

func TestRegistry_ConcurrentFirstAccess(t *testing.T) {
	var r registry
	results := make(chan any, 8)

	for i := 0; i < 8; i++ {
		go func() {
			m, _ := r.get("Areas", func() (any, error) { return &Areas{}, nil })
			results <- m
		}()
	}

	first := <-results
	for i := 1; i < 8; i++ {
		assert.Same(t, first, <-results)
	}
}
