package card

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Rank int

const (
	Ace Rank = iota
	King
	Queen
	Jack
)

// Sequence is the order rounds are played in; it repeats after Jack.
var Sequence = []Rank{Ace, King, Queen, Jack}

var rankNames = map[Rank]string{
	Ace:   "ACE",
	King:  "KING",
	Queen: "QUEEN",
	Jack:  "JACK",
}

var rankSymbols = map[Rank]string{
	Ace:   "A",
	King:  "K",
	Queen: "Q",
	Jack:  "J",
}

var rankPaint = map[Rank]func(string, ...interface{}) string{
	Ace:   color.New(color.FgHiRed).SprintfFunc(),
	King:  color.New(color.FgHiYellow).SprintfFunc(),
	Queen: color.New(color.FgHiGreen).SprintfFunc(),
	Jack:  color.New(color.FgHiCyan).SprintfFunc(),
}

func (r Rank) Valid() bool {
	_, ok := rankNames[r]
	return ok
}

func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RANK(%d)", int(r))
}

func (r Rank) Symbol() string {
	return rankSymbols[r]
}

func (r Rank) String() string {
	return r.Name()
}

// Next returns the rank played after r.
func (r Rank) Next() Rank {
	return Sequence[(int(r)+1)%len(Sequence)]
}

func ParseRank(s string) (Rank, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for rank, name := range rankNames {
		if s == name || s == rankSymbols[rank] {
			return rank, nil
		}
	}
	return 0, fmt.Errorf("invalid rank '%s'", s)
}

type Card struct {
	Rank Rank `json:"rank"`
}

func New(rank Rank) Card {
	return Card{Rank: rank}
}

func (c Card) Equal(other Card) bool {
	return c.Rank == other.Rank
}

func (c Card) String() string {
	paint, ok := rankPaint[c.Rank]
	if !ok {
		return fmt.Sprintf("[%s]", c.Rank)
	}
	return paint("[%s]", c.Rank.Symbol())
}

func Parse(s string) (Card, error) {
	rank, err := ParseRank(s)
	if err != nil {
		return Card{}, err
	}
	return New(rank), nil
}

// ParseAll parses space separated card symbols such as "A A K".
func ParseAll(fields []string) ([]Card, error) {
	cards := make([]Card, 0, len(fields))
	for _, field := range fields {
		c, err := Parse(field)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Count returns how many of cards have the given rank.
func Count(cards []Card, rank Rank) int {
	count := 0
	for _, c := range cards {
		if c.Rank == rank {
			count++
		}
	}
	return count
}

func Join(cards []Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
