package game

import (
	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/liar/card"
)

// Round is one pass of play on a single rank. It owns the turn cursor, the
// claim history and the claimed-card tally; at most one claim is unsettled
// at any time.
type Round struct {
	rank    card.Rank
	players []Player
	current int
	claims  []*Claim
	tally   map[card.Rank]int
}

func NewRound(rank card.Rank) *Round {
	return &Round{
		rank:  rank,
		tally: map[card.Rank]int{},
	}
}

func (r *Round) Rank() card.Rank {
	return r.rank
}

// Start resets the round and seats the alive players among players.
func (r *Round) Start(players []Player) {
	r.current = 0
	r.claims = nil
	r.tally = map[card.Rank]int{}
	r.players = alivePlayers(players)
}

func (r *Round) Current() Player {
	if len(r.players) == 0 {
		return nil
	}
	return r.players[r.current]
}

func (r *Round) Players() []Player {
	players := make([]Player, len(r.players))
	copy(players, r.players)
	return players
}

func (r *Round) Claims() []*Claim {
	claims := make([]*Claim, len(r.claims))
	copy(claims, r.claims)
	return claims
}

func (r *Round) Tally() int {
	return r.tally[r.rank]
}

// Claim records a claim by the current player and discards the offered
// cards from their hand. It does not move the turn.
func (r *Round) Claim(p Player, count int, cards []card.Card, claimedRank card.Rank) (*Claim, error) {
	if claimedRank != r.rank {
		return nil, consts.ErrorsInvalidClaim
	}
	if current := r.Current(); current == nil || current.ID() != p.ID() {
		return nil, consts.ErrorsNotYourTurn
	}
	if !p.Alive() {
		return nil, consts.ErrorsPlayerDead
	}
	claim, err := p.Claim(count, cards, claimedRank)
	if err != nil {
		return nil, err
	}
	if err = p.Hand().DiscardAll(cards); err != nil {
		return nil, err
	}
	// an unchallenged claim is accepted once the next one is made
	r.SettleLastClaim()
	r.claims = append(r.claims, claim)
	r.tally[claimedRank] += count
	return claim, nil
}

// Challenge resolves the pending claim and moves the turn on. The loser is
// the claim's owner when the claim was a lie, otherwise the challenger.
// Shooting the loser and settling the claim are left to the caller.
func (r *Round) Challenge(challenger Player) (Player, *Claim, error) {
	claim := r.LastClaim()
	if claim == nil {
		return nil, nil, consts.ErrorsNoActiveClaim
	}
	if current := r.Current(); current == nil || current.ID() != challenger.ID() {
		return nil, nil, consts.ErrorsNotYourTurn
	}
	if claim.Owner().ID() == challenger.ID() {
		return nil, nil, consts.ErrorsSelfChallenge
	}
	loser := challenger
	if claim.Matching() < claim.Count() {
		loser = claim.Owner()
	}
	r.MoveToNextPlayer()
	return loser, claim, nil
}

// LastClaim returns the newest claim while it is still unsettled.
func (r *Round) LastClaim() *Claim {
	if len(r.claims) == 0 {
		return nil
	}
	last := r.claims[len(r.claims)-1]
	if last.Settled() {
		return nil
	}
	return last
}

func (r *Round) SettleLastClaim() {
	for i := len(r.claims) - 1; i >= 0; i-- {
		if !r.claims[i].Settled() {
			r.claims[i].Settle()
			return
		}
	}
}

// MoveToNextPlayer drops eliminated players, steps the cursor and skips, for
// at most one lap, players without cards.
func (r *Round) MoveToNextPlayer() Player {
	if len(r.players) == 0 {
		return nil
	}
	var next Player
	for step := 1; step <= len(r.players); step++ {
		candidate := r.players[(r.current+step)%len(r.players)]
		if candidate.Alive() {
			next = candidate
			break
		}
	}
	r.players = alivePlayers(r.players)
	if next == nil || len(r.players) == 0 {
		r.current = 0
		return r.Current()
	}
	r.current = indexOf(r.players, next.ID())
	for lap := 0; lap < len(r.players) && r.players[r.current].Hand().Empty(); lap++ {
		r.current = (r.current + 1) % len(r.players)
	}
	if r.players[r.current].Hand().Empty() {
		r.current = indexOf(r.players, next.ID())
	}
	return r.Current()
}

// RemovePlayer takes a player out of the rotation. If they held the turn it
// passes to whoever sat after them.
func (r *Round) RemovePlayer(id int64) {
	index := indexOf(r.players, id)
	if index < 0 {
		return
	}
	r.players = append(r.players[:index:index], r.players[index+1:]...)
	switch {
	case len(r.players) == 0:
		r.current = 0
	case index < r.current:
		r.current--
	case r.current >= len(r.players):
		r.current = 0
	}
}

func (r *Round) Complete() bool {
	return r.alive() <= 1 || r.tally[r.rank] >= consts.CardsPerRank
}

// Stalled reports a round nobody can continue: no pending claim and no
// alive player holding a card.
func (r *Round) Stalled() bool {
	if r.LastClaim() != nil {
		return false
	}
	for _, p := range r.players {
		if p.Alive() && !p.Hand().Empty() {
			return false
		}
	}
	return true
}

func (r *Round) alive() int {
	count := 0
	for _, p := range r.players {
		if p.Alive() {
			count++
		}
	}
	return count
}

func alivePlayers(players []Player) []Player {
	alive := make([]Player, 0, len(players))
	for _, p := range players {
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	return alive
}

func indexOf(players []Player, id int64) int {
	for i, p := range players {
		if p.ID() == id {
			return i
		}
	}
	return -1
}
