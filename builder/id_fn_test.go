package builder_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/traverser/builder"
)

func TestLetterIDFn(t *testing.T) {
	assert.Equal(t, "A", builder.LetterIDFn(0))
	assert.Equal(t, "Z", builder.LetterIDFn(25))
	assert.Equal(t, "a", builder.LetterIDFn(26))
	assert.Equal(t, "l", builder.LetterIDFn(37))
	assert.Equal(t, "z", builder.LetterIDFn(51))
	assert.Panics(t, func() { builder.LetterIDFn(52) })
	assert.Panics(t, func() { builder.LetterIDFn(-1) })
}

func TestLabels_LexicalEqualsIndexOrder(t *testing.T) {
	for _, fn := range []builder.IDFn{builder.LetterIDFn, builder.SymbolNumberIDFn("v")} {
		labels := builder.Labels(fn, builder.MaxNodes)
		assert.True(t, sort.StringsAreSorted(labels))
	}
	assert.Equal(t, []string{"v00", "v01", "v02"}, builder.Labels(builder.SymbolNumberIDFn("v"), 3))
}

func TestIDSchemeOptions(t *testing.T) {
	g, err := builder.Generate(5, "n00", "n04", builder.WithSeed(1), builder.WithSymbNumb("n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"n00", "n01", "n02", "n03", "n04"}, g.Vertices())

	_, err = builder.Generate(5, "A", "E", builder.WithSeed(1), builder.WithSymbNumb("n"))
	assert.ErrorIs(t, err, builder.ErrLabelNotInGraph)

	// the last scheme option wins
	g, err = builder.Generate(5, "A", "E", builder.WithSeed(1), builder.WithSymbNumb("n"), builder.WithLetterIDs())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Vertices())
}
