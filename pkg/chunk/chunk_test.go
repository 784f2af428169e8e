package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/pkg/chunk"
	"github.com/leapstack-labs/sqlint/pkg/core"
)

func TestPositioned(t *testing.T) {
	c := chunk.New("SELECT", 3, 5, chunk.TagKeyword)

	assert.Equal(t, "SELECT", c.Text())
	assert.Equal(t, core.Position{Line: 3, Col: 5}, c.Position())
	assert.Equal(t, chunk.TagKeyword, c.Tag)
}

func TestString_Immutability(t *testing.T) {
	source := []chunk.Positioned{
		chunk.New("SELECT", 1, 1, chunk.TagKeyword),
		chunk.New(" ", 1, 7, chunk.TagWhitespace),
	}
	cs := chunk.NewString(source...)

	// Mutating the constructor argument must not affect the string.
	source[0].Content = "mutated"
	assert.Equal(t, "SELECT", cs.At(0).Content)

	// Mutating the accessor result must not affect the string either.
	out := cs.Chunks()
	out[1].Content = "mutated"
	assert.Equal(t, " ", cs.At(1).Content)
}

func TestString_Text(t *testing.T) {
	cs := chunk.NewString(
		chunk.New("SELECT", 1, 1, chunk.TagKeyword),
		chunk.New(" ", 1, 7, chunk.TagWhitespace),
		chunk.New("id", 1, 8, chunk.TagWord),
		chunk.New("\n", 1, 10, chunk.TagNewline),
	)

	require.Equal(t, 4, cs.Len())
	assert.Equal(t, "SELECT id\n", cs.Text())
}

func TestString_Empty(t *testing.T) {
	cs := chunk.NewString()
	assert.Equal(t, 0, cs.Len())
	assert.Equal(t, "", cs.Text())
	assert.Empty(t, cs.Chunks())
}
