package problem

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CollectAndOK(t *testing.T) {
	c := NewCollector()
	assert.True(t, c.OK())
	assert.Zero(t, c.Len())

	c.Collect(New(KindConflict, "incompatible kinds").Build())

	assert.False(t, c.OK())
	assert.Equal(t, 1, c.Len())
}

func TestCollector_CollectAll(t *testing.T) {
	c := NewCollector()
	c.CollectAll([]Problem{
		New(SubTypeProblem, "a").Build(),
		New(ConversionProblem, "b").Build(),
	})

	require.Equal(t, 2, c.Len())
	kinds := []Kind{c.Problems()[0].Kind(), c.Problems()[1].Kind()}
	assert.Equal(t, []Kind{SubTypeProblem, ConversionProblem}, kinds)
}

func TestCollector_ProblemsReturnsDefensiveCopy(t *testing.T) {
	c := NewCollector()
	c.Collect(New(SubTypeProblem, "a").Build())

	got := c.Problems()
	got[0] = New(ConversionProblem, "mutated").Build()

	assert.Equal(t, SubTypeProblem, c.Problems()[0].Kind())
}

func TestCollector_ConcurrentCollect(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Collect(New(SubTypeProblem, "concurrent").Build())
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}
