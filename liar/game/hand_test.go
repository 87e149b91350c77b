package game_test

import (
	"testing"

	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/liar/card"
	"github.com/ratel-online/liar/liar/game"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	hand := game.NewHand()
	hand.Add(ace, king)
	require.Equal(t, []card.Card{ace, king}, hand.Cards())
	require.Equal(t, 2, hand.Size())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.Add(jack)
	require.False(t, hand.Empty())
}

func TestDiscard(t *testing.T) {
	t.Run("removes_a_single_copy", func(t *testing.T) {
		hand := game.NewHand(ace, king, ace)
		require.NoError(t, hand.Discard(ace))
		require.Equal(t, []card.Card{king, ace}, hand.Cards())
	})

	t.Run("fails_on_an_empty_hand", func(t *testing.T) {
		hand := game.NewHand()
		require.ErrorIs(t, hand.Discard(ace), consts.ErrorsEmptyHand)
	})

	t.Run("fails_on_a_card_not_held", func(t *testing.T) {
		hand := game.NewHand(king)
		require.ErrorIs(t, hand.Discard(queen), consts.ErrorsInvalidCard)
		require.Equal(t, []card.Card{king}, hand.Cards())
	})
}

func TestDiscardAll(t *testing.T) {
	t.Run("removes_every_card", func(t *testing.T) {
		hand := game.NewHand(ace, king, queen, ace)
		require.NoError(t, hand.DiscardAll([]card.Card{ace, ace}))
		require.Equal(t, []card.Card{king, queen}, hand.Cards())
	})

	t.Run("leaves_the_hand_untouched_when_one_card_is_missing", func(t *testing.T) {
		hand := game.NewHand(ace, king)
		require.ErrorIs(t, hand.DiscardAll([]card.Card{ace, ace}), consts.ErrorsInvalidCard)
		require.Equal(t, []card.Card{ace, king}, hand.Cards())
	})
}

func TestCardsIsACopy(t *testing.T) {
	hand := game.NewHand(ace)
	cards := hand.Cards()
	cards[0] = jack
	require.Equal(t, []card.Card{ace}, hand.Cards())
}
