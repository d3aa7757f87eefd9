package idgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
)

func TestCounterStartsAtOne(t *testing.T) {
	seq := idgen.NewCounter()
	assert.Equal(t, uint64(1), seq.Next())
}

func TestCounterStrictlyIncreasing(t *testing.T) {
	seq := idgen.NewCounter()

	prev := uint64(0)
	for i := 0; i < 100; i++ {
		next := seq.Next()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestUUIDGeneratorPrefix(t *testing.T) {
	gen := idgen.NewUUID("trade")

	id := gen.Generate()
	assert.Contains(t, id, "trade_")

	other := gen.Generate()
	assert.NotEqual(t, id, other)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("test")
	assert.Equal(t, "test_1", gen.Generate())
	assert.Equal(t, "test_2", gen.Generate())
}
