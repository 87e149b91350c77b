package game_test

import (
	"testing"

	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/liar/card"
	"github.com/ratel-online/liar/liar/game"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	t.Run("returns_six_cards_of_every_rank", func(t *testing.T) {
		deck := game.NewDeck(newRand(1))
		cards, err := deck.Draw(24)
		require.NoError(t, err)
		var standard []card.Card
		for _, rank := range card.Sequence {
			standard = append(standard, repeat(card.New(rank), consts.CardsPerRank)...)
		}
		require.ElementsMatch(t, standard, cards)
		require.Equal(t, 0, deck.Remaining())
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := game.NewDeck(newRand(1))
		cards, err := deck.Draw(0)
		require.NoError(t, err)
		require.Empty(t, cards)
	})

	t.Run("draws_without_replacement", func(t *testing.T) {
		deck := game.NewDeck(newRand(2))
		_, err := deck.Draw(20)
		require.NoError(t, err)
		require.Equal(t, 4, deck.Remaining())
	})

	t.Run("fails_when_overdrawn", func(t *testing.T) {
		deck := game.NewDeck(newRand(3))
		_, err := deck.Draw(20)
		require.NoError(t, err)
		_, err = deck.Draw(5)
		require.ErrorIs(t, err, consts.ErrorsDeckExhausted)
		require.Equal(t, 4, deck.Remaining())
	})

	t.Run("same_seed_same_order", func(t *testing.T) {
		first, _ := game.NewDeck(newRand(9)).Draw(24)
		second, _ := game.NewDeck(newRand(9)).Draw(24)
		require.Equal(t, first, second)
	})
}
