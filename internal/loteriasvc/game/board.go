package game

import (
	"math/rand"

	"github.com/angelsr16/loteria/internal/loteriasvc/models"
)

// GenerateBoard draws BoardSize distinct symbols from 1..DeckSize,
// all unmarked. Each player gets an independent board.
func GenerateBoard() *models.Board {
	seen := make(map[int]struct{}, BoardSize)
	cards := make([]models.Card, 0, BoardSize)

	for len(cards) < BoardSize {
		n := rand.Intn(DeckSize) + 1
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		cards = append(cards, models.Card{Number: n})
	}

	return &models.Board{Cards: cards}
}
