package game

import (
	"fmt"

	"github.com/ratel-online/liar/liar/card"
)

// Claim is a player's assertion that the cards they put down are count cards
// of rank. Only the settled flag changes after creation.
type Claim struct {
	count   int
	rank    card.Rank
	owner   Player
	cards   []card.Card
	settled bool
}

func NewClaim(owner Player, count int, rank card.Rank, cards []card.Card) *Claim {
	offered := make([]card.Card, len(cards))
	copy(offered, cards)
	return &Claim{
		count: count,
		rank:  rank,
		owner: owner,
		cards: offered,
	}
}

func (c *Claim) Count() int {
	return c.count
}

func (c *Claim) Rank() card.Rank {
	return c.rank
}

func (c *Claim) Owner() Player {
	return c.owner
}

func (c *Claim) Cards() []card.Card {
	cards := make([]card.Card, len(c.cards))
	copy(cards, c.cards)
	return cards
}

// Matching is the number of offered cards that really are of the claimed rank.
func (c *Claim) Matching() int {
	return card.Count(c.cards, c.rank)
}

func (c *Claim) IsValid() bool {
	return c.Matching() == c.count
}

func (c *Claim) Settled() bool {
	return c.settled
}

func (c *Claim) Settle() {
	c.settled = true
}

func (c *Claim) String() string {
	return fmt.Sprintf("%s claims %d %s", c.owner.Name(), c.count, c.rank)
}
