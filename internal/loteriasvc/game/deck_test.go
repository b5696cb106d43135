package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleDeckIsPermutation(t *testing.T) {
	for i := 0; i < 50; i++ {
		deck := ShuffleDeck()
		require.Len(t, deck, DeckSize)

		seen := map[int]bool{}
		for _, n := range deck {
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, DeckSize)
			assert.False(t, seen[n], "repeated call %d", n)
			seen[n] = true
		}
		assert.Len(t, seen, DeckSize, "deck must cover every symbol")
	}
}
