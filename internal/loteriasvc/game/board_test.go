package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBoardSizeAndRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		board := GenerateBoard()
		require.Len(t, board.Cards, BoardSize)

		seen := map[int]bool{}
		for _, c := range board.Cards {
			assert.GreaterOrEqual(t, c.Number, 1)
			assert.LessOrEqual(t, c.Number, DeckSize)
			assert.False(t, c.IsMarked, "new boards start unmarked")
			assert.False(t, seen[c.Number], "duplicate symbol %d", c.Number)
			seen[c.Number] = true
		}
	}
}

func TestGenerateBoardsAreIndependent(t *testing.T) {
	// Two boards from the same generator should not be forced to share
	// a full symbol set; equality across many draws would mean the
	// generator is not sampling.
	identical := 0
	for i := 0; i < 20; i++ {
		a, b := GenerateBoard(), GenerateBoard()
		same := true
		for j := range a.Cards {
			if a.Cards[j].Number != b.Cards[j].Number {
				same = false
				break
			}
		}
		if same {
			identical++
		}
	}
	assert.Less(t, identical, 20)
}
