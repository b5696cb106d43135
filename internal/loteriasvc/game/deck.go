package game

import "math/rand"

const (
	// DeckSize is the number of symbols in the loteria deck.
	DeckSize = 54
	// BoardSize is the number of cards on one player board.
	BoardSize = 16
)

// ShuffleDeck returns the full call order for one game: a random
// permutation of 1..DeckSize.
func ShuffleDeck() []int {
	deck := rand.Perm(DeckSize)
	for i := range deck {
		deck[i]++
	}
	return deck
}
