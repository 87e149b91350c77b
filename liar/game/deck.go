package game

import (
	"math/rand"
	"sync"

	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/liar/card"
)

type Deck struct {
	sync.Mutex
	cards []card.Card
}

func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{}
	fillDeck(deck, rng)
	return deck
}

func (d *Deck) Draw(amount int) ([]card.Card, error) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if amount < 0 || len(d.cards) < amount {
		return nil, consts.ErrorsDeckExhausted
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

func (d *Deck) Remaining() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}

func fillDeck(deck *Deck, rng *rand.Rand) {
	cards := make([]card.Card, 0, len(card.Sequence)*consts.CardsPerRank)
	for _, rank := range card.Sequence {
		for i := 0; i < consts.CardsPerRank; i++ {
			cards = append(cards, card.New(rank))
		}
	}
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	deck.cards = cards
}
