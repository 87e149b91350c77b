package game

import (
	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/liar/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand(cards ...card.Card) *Hand {
	hand := &Hand{cards: make([]card.Card, 0, consts.HandSize)}
	hand.Add(cards...)
	return hand
}

func (h *Hand) Add(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// Contains reports whether every card of cards, counted with multiplicity,
// is held.
func (h *Hand) Contains(cards []card.Card) bool {
	held := make(map[card.Rank]int, len(card.Sequence))
	for _, c := range h.cards {
		held[c.Rank]++
	}
	for _, c := range cards {
		if held[c.Rank] == 0 {
			return false
		}
		held[c.Rank]--
	}
	return true
}

func (h *Hand) Discard(c card.Card) error {
	if h.Empty() {
		return consts.ErrorsEmptyHand
	}
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return nil
		}
	}
	return consts.ErrorsInvalidCard
}

// DiscardAll removes cards only if all of them are held; otherwise the hand
// is left untouched.
func (h *Hand) DiscardAll(cards []card.Card) error {
	if len(cards) > 0 && h.Empty() {
		return consts.ErrorsEmptyHand
	}
	if !h.Contains(cards) {
		return consts.ErrorsInvalidCard
	}
	for _, c := range cards {
		if err := h.Discard(c); err != nil {
			return err
		}
	}
	return nil
}
