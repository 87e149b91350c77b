package game

import (
	"fmt"

	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/liar/card"
)

type Player interface {
	ID() int64
	Name() string
	Hand() *Hand
	Revolver() *Revolver
	Alive() bool
	Claim(count int, cards []card.Card, rank card.Rank) (*Claim, error)
	Shoot() bool
	Eliminate()
	Equip(hand *Hand, revolver *Revolver)
}

type player struct {
	id       int64
	name     string
	hand     *Hand
	revolver *Revolver
	alive    bool
}

func NewPlayer(id int64, name string) Player {
	return &player{
		id:    id,
		name:  name,
		hand:  NewHand(),
		alive: true,
	}
}

func (p *player) ID() int64 {
	return p.id
}

func (p *player) Name() string {
	return p.name
}

func (p *player) Hand() *Hand {
	return p.hand
}

func (p *player) Revolver() *Revolver {
	return p.revolver
}

func (p *player) Alive() bool {
	return p.alive
}

// Claim builds an unsettled claim over cards the player holds. The hand is
// not touched; the round discards once the claim is accepted.
func (p *player) Claim(count int, cards []card.Card, rank card.Rank) (*Claim, error) {
	if count < 1 || count > consts.MaxClaimCards || count != len(cards) {
		return nil, consts.ErrorsClaimCount
	}
	if p.hand.Empty() {
		return nil, consts.ErrorsEmptyHand
	}
	if !p.hand.Contains(cards) {
		return nil, consts.ErrorsInvalidCard
	}
	return NewClaim(p, count, rank, cards), nil
}

func (p *player) Shoot() bool {
	if !p.alive || p.revolver == nil {
		return false
	}
	if p.revolver.Shoot() {
		p.alive = false
		return true
	}
	return false
}

func (p *player) Eliminate() {
	p.alive = false
}

func (p *player) Equip(hand *Hand, revolver *Revolver) {
	p.hand = hand
	p.revolver = revolver
	p.alive = true
}

func (p *player) String() string {
	return fmt.Sprintf("%s[%d]", p.name, p.id)
}
