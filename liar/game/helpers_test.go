package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/liar/liar/card"
	"github.com/ratel-online/liar/liar/game"
)

var (
	ace   = card.New(card.Ace)
	king  = card.New(card.King)
	queen = card.New(card.Queen)
	jack  = card.New(card.Jack)
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// revolverWithBullet searches seeds for a revolver loaded in chamber bullet.
func revolverWithBullet(t *testing.T, bullet int) *game.Revolver {
	t.Helper()
	for seed := int64(1); seed < 10000; seed++ {
		revolver := game.NewRevolver(newRand(seed))
		if revolver.Bullet() == bullet {
			return revolver
		}
	}
	t.Fatalf("no seed loads chamber %d", bullet)
	return nil
}

// seat creates a player holding cards with a revolver loaded in chamber bullet.
func seat(t *testing.T, id int64, name string, bullet int, cards ...card.Card) game.Player {
	t.Helper()
	p := game.NewPlayer(id, name)
	p.Equip(game.NewHand(cards...), revolverWithBullet(t, bullet))
	return p
}

func repeat(c card.Card, n int) []card.Card {
	cards := make([]card.Card, n)
	for i := range cards {
		cards[i] = c
	}
	return cards
}
