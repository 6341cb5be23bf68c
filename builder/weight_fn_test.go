package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/traverser/builder"
)

func TestUniformWeightFn_CoversRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fn := builder.UniformWeightFn(1, 4)
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(1))
		assert.LessOrEqual(t, w, int64(4))
		seen[w] = true
	}
	assert.Len(t, seen, 4)

	assert.Equal(t, int64(7), builder.UniformWeightFn(7, 7)(rng))
	assert.Equal(t, int64(3), builder.ConstantWeightFn(3)(nil))
}
