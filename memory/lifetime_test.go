package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type counted struct {
	destroyed *int
}

func (c *counted) Destroy() { *c.destroyed++ }

func TestDestroy_UsesDestroyer(t *testing.T) {
	n := 0
	v := counted{destroyed: &n}

	Destroy(&v, nil)
	assert.Equal(t, 1, n)
}

func TestDestroy_FuncWins(t *testing.T) {
	n := 0
	custom := 0
	v := counted{destroyed: &n}

	Destroy(&v, func(*counted) { custom++ })
	assert.Equal(t, 0, n, "Destroyer must not run when a func is supplied")
	assert.Equal(t, 1, custom)
}

func TestDestroy_PlainValue(t *testing.T) {
	v := 42
	Destroy(&v, nil) // no-op
	Destroy[int](nil, nil)
	assert.Equal(t, 42, v)
}

func TestHasDestructor(t *testing.T) {
	assert.True(t, HasDestructor[counted](nil))
	assert.False(t, HasDestructor[int](nil))
	assert.True(t, HasDestructor(func(*int) {}))
}
