package game_test

import (
	"testing"

	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/liar/card"
	"github.com/ratel-online/liar/liar/game"
	"github.com/stretchr/testify/require"
)

func TestRoundStart(t *testing.T) {
	p1 := seat(t, 1, "P1", 6, ace)
	p2 := seat(t, 2, "P2", 6, ace)
	p3 := seat(t, 3, "P3", 6, ace)
	p2.Eliminate()

	round := game.NewRound(card.Ace)
	round.Start([]game.Player{p1, p2, p3})

	require.Equal(t, []game.Player{p1, p3}, round.Players())
	require.Equal(t, p1, round.Current())
	require.Nil(t, round.LastClaim())
	require.Equal(t, 0, round.Tally())
}

func TestRoundClaim(t *testing.T) {
	t.Run("rank_must_match_the_round", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace, king)
		p2 := seat(t, 2, "P2", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})

		_, err := round.Claim(p1, 1, []card.Card{king}, card.King)
		require.ErrorIs(t, err, consts.ErrorsInvalidClaim)
		require.Equal(t, 2, p1.Hand().Size())
	})

	t.Run("only_the_current_player_may_claim", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace)
		p2 := seat(t, 2, "P2", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})

		_, err := round.Claim(p2, 1, []card.Card{ace}, card.Ace)
		require.ErrorIs(t, err, consts.ErrorsNotYourTurn)
		require.Equal(t, 1, p2.Hand().Size())
	})

	t.Run("failed_claim_keeps_the_hand", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace, king)
		p2 := seat(t, 2, "P2", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})

		_, err := round.Claim(p1, 2, []card.Card{ace, ace}, card.Ace)
		require.ErrorIs(t, err, consts.ErrorsInvalidCard)
		require.Equal(t, []card.Card{ace, king}, p1.Hand().Cards())
		require.Empty(t, round.Claims())
	})

	t.Run("discards_and_tallies_without_moving_the_turn", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace, king, queen)
		p2 := seat(t, 2, "P2", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})

		claim, err := round.Claim(p1, 2, []card.Card{ace, king}, card.Ace)
		require.NoError(t, err)
		require.Equal(t, []card.Card{queen}, p1.Hand().Cards())
		require.Equal(t, 2, round.Tally())
		require.Equal(t, claim, round.LastClaim())
		require.Equal(t, p1, round.Current())
	})

	t.Run("a_new_claim_settles_the_unchallenged_one", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace)
		p2 := seat(t, 2, "P2", 6, king)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})

		first, err := round.Claim(p1, 1, []card.Card{ace}, card.Ace)
		require.NoError(t, err)
		round.MoveToNextPlayer()
		second, err := round.Claim(p2, 1, []card.Card{king}, card.Ace)
		require.NoError(t, err)

		require.True(t, first.Settled())
		require.False(t, second.Settled())
		require.Len(t, round.Claims(), 2)
	})
}

func TestRoundChallenge(t *testing.T) {
	t.Run("scenario_a_true_claim_loses_the_challenger", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace, king)
		p2 := seat(t, 2, "P2", 6, queen)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})

		claim, err := round.Claim(p1, 1, []card.Card{ace}, card.Ace)
		require.NoError(t, err)
		require.True(t, claim.IsValid())
		round.MoveToNextPlayer()

		loser, challenged, err := round.Challenge(p2)
		require.NoError(t, err)
		require.Equal(t, p2, loser)
		require.Equal(t, claim, challenged)
		require.Equal(t, p1, round.Current())
	})

	t.Run("scenario_b_lie_loses_the_claimer", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, king, queen, jack)
		p2 := seat(t, 2, "P2", 6, queen)
		round := game.NewRound(card.King)
		round.Start([]game.Player{p1, p2})

		claim, err := round.Claim(p1, 2, []card.Card{king, queen}, card.King)
		require.NoError(t, err)
		require.False(t, claim.IsValid())
		round.MoveToNextPlayer()

		loser, _, err := round.Challenge(p2)
		require.NoError(t, err)
		require.Equal(t, p1, loser)
	})

	t.Run("nothing_to_challenge", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace)
		p2 := seat(t, 2, "P2", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})

		_, _, err := round.Challenge(p1)
		require.ErrorIs(t, err, consts.ErrorsNoActiveClaim)
	})

	t.Run("settled_claims_cannot_be_challenged", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace)
		p2 := seat(t, 2, "P2", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})
		_, err := round.Claim(p1, 1, []card.Card{ace}, card.Ace)
		require.NoError(t, err)
		round.MoveToNextPlayer()
		round.SettleLastClaim()

		_, _, err = round.Challenge(p2)
		require.ErrorIs(t, err, consts.ErrorsNoActiveClaim)
	})

	t.Run("not_your_turn", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace)
		p2 := seat(t, 2, "P2", 6, ace)
		p3 := seat(t, 3, "P3", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2, p3})
		_, err := round.Claim(p1, 1, []card.Card{ace}, card.Ace)
		require.NoError(t, err)
		round.MoveToNextPlayer()

		_, _, err = round.Challenge(p3)
		require.ErrorIs(t, err, consts.ErrorsNotYourTurn)
		require.NotNil(t, round.LastClaim())
	})

	t.Run("cannot_challenge_yourself", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace, ace)
		p2 := seat(t, 2, "P2", 6)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})
		_, err := round.Claim(p1, 1, []card.Card{ace}, card.Ace)
		require.NoError(t, err)
		// p2 holds nothing and is skipped
		require.Equal(t, p1, round.MoveToNextPlayer())

		_, _, err = round.Challenge(p1)
		require.ErrorIs(t, err, consts.ErrorsSelfChallenge)
	})
}

func TestSettleLastClaimIsIdempotent(t *testing.T) {
	p1 := seat(t, 1, "P1", 6, ace)
	p2 := seat(t, 2, "P2", 6, ace)
	round := game.NewRound(card.Ace)
	round.Start([]game.Player{p1, p2})
	claim, err := round.Claim(p1, 1, []card.Card{ace}, card.Ace)
	require.NoError(t, err)

	round.SettleLastClaim()
	require.True(t, claim.Settled())
	require.Nil(t, round.LastClaim())

	require.NotPanics(t, round.SettleLastClaim)
	require.True(t, claim.Settled())
	require.Len(t, round.Claims(), 1)
}

func TestMoveToNextPlayer(t *testing.T) {
	t.Run("full_lap_returns_to_the_start", func(t *testing.T) {
		players := []game.Player{
			seat(t, 1, "P1", 6, ace),
			seat(t, 2, "P2", 6, ace),
			seat(t, 3, "P3", 6, ace),
			seat(t, 4, "P4", 6, ace),
		}
		round := game.NewRound(card.Ace)
		round.Start(players)
		start := round.Current()
		for i := 0; i < len(players); i++ {
			round.MoveToNextPlayer()
		}
		require.Equal(t, start, round.Current())
	})

	t.Run("drops_eliminated_players", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace)
		p2 := seat(t, 2, "P2", 6, ace)
		p3 := seat(t, 3, "P3", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2, p3})

		p2.Eliminate()
		require.Equal(t, p3, round.MoveToNextPlayer())
		require.Equal(t, []game.Player{p1, p3}, round.Players())
		require.Equal(t, p1, round.MoveToNextPlayer())
	})

	t.Run("eliminated_current_passes_to_its_successor", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace)
		p2 := seat(t, 2, "P2", 6, ace)
		p3 := seat(t, 3, "P3", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2, p3})
		round.MoveToNextPlayer()

		p2.Eliminate()
		require.Equal(t, p3, round.MoveToNextPlayer())
	})

	t.Run("skips_players_without_cards", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace)
		p2 := seat(t, 2, "P2", 6)
		p3 := seat(t, 3, "P3", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2, p3})

		require.Equal(t, p3, round.MoveToNextPlayer())
		require.Equal(t, []game.Player{p1, p2, p3}, round.Players())
	})

	t.Run("all_hands_empty_does_not_loop", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6)
		p2 := seat(t, 2, "P2", 6)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})

		require.Equal(t, p2, round.MoveToNextPlayer())
		require.True(t, round.Stalled())
	})
}

func TestRoundComplete(t *testing.T) {
	t.Run("tally_reaches_the_rank_count", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, repeat(jack, 3)...)
		p2 := seat(t, 2, "P2", 6, repeat(ace, 3)...)
		round := game.NewRound(card.Jack)
		round.Start([]game.Player{p1, p2})

		_, err := round.Claim(p1, 3, repeat(jack, 3), card.Jack)
		require.NoError(t, err)
		require.False(t, round.Complete())
		round.MoveToNextPlayer()
		_, err = round.Claim(p2, 3, repeat(ace, 3), card.Jack)
		require.NoError(t, err)
		require.Equal(t, consts.CardsPerRank, round.Tally())
		require.True(t, round.Complete())
	})

	t.Run("one_player_left", func(t *testing.T) {
		p1 := seat(t, 1, "P1", 6, ace)
		p2 := seat(t, 2, "P2", 6, ace)
		round := game.NewRound(card.Ace)
		round.Start([]game.Player{p1, p2})
		require.False(t, round.Complete())

		p2.Eliminate()
		require.True(t, round.Complete())
	})
}

func TestRoundRemovePlayer(t *testing.T) {
	p1 := seat(t, 1, "P1", 6, ace)
	p2 := seat(t, 2, "P2", 6, ace)
	p3 := seat(t, 3, "P3", 6, ace)
	round := game.NewRound(card.Ace)
	round.Start([]game.Player{p1, p2, p3})
	round.MoveToNextPlayer()

	round.RemovePlayer(p2.ID())
	require.Equal(t, p3, round.Current())
	require.Equal(t, []game.Player{p1, p3}, round.Players())

	round.RemovePlayer(p1.ID())
	require.Equal(t, p3, round.Current())
}
