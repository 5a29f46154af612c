package pairqueue_test

import (
	"testing"

	"github.com/polyra/groebner/pairqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alwaysAlive(int) bool { return true }

func TestPopReturnsLowestKeyFirst(t *testing.T) {
	q := pairqueue.New()
	q.Push(0, 1, 9)
	q.Push(1, 2, 3)
	q.Push(0, 2, 5)

	p, ok := q.Pop(alwaysAlive)
	require.True(t, ok)
	assert.Equal(t, pairqueue.Pair{I: 1, J: 2, Key: 3}, p)
}

func TestPushIsCanonicalAndIdempotent(t *testing.T) {
	q := pairqueue.New()
	q.Push(2, 0, 7)
	assert.True(t, q.Contains(0, 2))
	assert.True(t, q.Contains(2, 0))
	assert.Equal(t, 1, q.Len())

	q.Push(0, 2, 99) // duplicate, should be ignored
	assert.Equal(t, 1, q.Len())
}

func TestPopSkipsDeadPairs(t *testing.T) {
	q := pairqueue.New()
	q.Push(0, 1, 1)
	q.Push(1, 2, 2)

	dead := map[int]bool{0: true}
	alive := func(i int) bool { return !dead[i] }

	p, ok := q.Pop(alive)
	require.True(t, ok)
	assert.Equal(t, pairqueue.Pair{I: 1, J: 2, Key: 2}, p)

	_, ok = q.Pop(alive)
	assert.False(t, ok)
}

func TestPopOnEmptyQueueReturnsFalse(t *testing.T) {
	q := pairqueue.New()
	_, ok := q.Pop(alwaysAlive)
	assert.False(t, ok)
}

func TestContainsAfterPopIsFalse(t *testing.T) {
	q := pairqueue.New()
	q.Push(0, 1, 4)
	_, ok := q.Pop(alwaysAlive)
	require.True(t, ok)
	assert.False(t, q.Contains(0, 1))
}
