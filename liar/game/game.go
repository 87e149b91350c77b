package game

import (
	"math/rand"

	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/liar/card"
	"github.com/ratel-online/liar/liar/event"
)

type State int

const (
	NotStarted State = iota
	Started
	Over
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Started:
		return "Started"
	case Over:
		return "Over"
	}
	return "Unknown"
}

// Game sequences the four rank rounds over a roster until one player is
// left alive. It is not safe for concurrent use; callers serialize access.
type Game struct {
	publisher *event.Publisher
	rng       *rand.Rand

	roster     []Player
	active     []Player
	eliminated []Player
	synced     bool

	rounds     []*Round
	roundIndex int
	deck       *Deck
	state      State
}

func New(publisher *event.Publisher, rng *rand.Rand) *Game {
	rounds := make([]*Round, 0, len(card.Sequence))
	for _, rank := range card.Sequence {
		rounds = append(rounds, NewRound(rank))
	}
	return &Game{
		publisher: publisher,
		rng:       rng,
		rounds:    rounds,
	}
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Round() *Round {
	return g.rounds[g.roundIndex]
}

func (g *Game) RoundIndex() int {
	return g.roundIndex
}

func (g *Game) Roster() []Player {
	players := make([]Player, len(g.roster))
	copy(players, g.roster)
	return players
}

func (g *Game) Player(id int64) Player {
	if index := indexOf(g.roster, id); index >= 0 {
		return g.roster[index]
	}
	return nil
}

func (g *Game) AddPlayer(p Player) error {
	if g.state != NotStarted {
		return consts.ErrorsGameStarted
	}
	if indexOf(g.roster, p.ID()) >= 0 {
		return consts.ErrorsPlayerExists
	}
	g.roster = append(g.roster, p)
	g.invalidate()
	return nil
}

// RemovePlayer takes a player off the roster. Unlike elimination the player
// is gone for good, including from the round in play.
func (g *Game) RemovePlayer(p Player) error {
	index := indexOf(g.roster, p.ID())
	if index < 0 {
		return consts.ErrorsPlayerUnknown
	}
	g.roster = append(g.roster[:index:index], g.roster[index+1:]...)
	g.invalidate()
	g.emit(event.PlayerRemoved, p.ID(), "%s left the table", p.Name())
	if g.state == Started {
		current := g.Round().Current()
		g.Round().RemovePlayer(p.ID())
		g.afterTurnLoss(current)
	}
	return nil
}

// Eliminate takes a player out of play without a shot, as when they
// disconnect mid-game. They stay on the roster.
func (g *Game) Eliminate(p Player) error {
	if indexOf(g.roster, p.ID()) < 0 {
		return consts.ErrorsPlayerUnknown
	}
	if !p.Alive() {
		return nil
	}
	current := g.Round().Current()
	p.Eliminate()
	g.invalidate()
	g.emit(event.PlayerEliminated, p.ID(), "%s is eliminated", p.Name())
	if g.state == Started {
		g.afterTurnLoss(current)
	}
	return nil
}

func (g *Game) Start() error {
	if g.state != NotStarted {
		return consts.ErrorsGameStarted
	}
	if len(g.roster) < consts.MinPlayers {
		return consts.ErrorsGamePlayersInvalid
	}
	if len(g.roster)*consts.HandSize > len(card.Sequence)*consts.CardsPerRank {
		return consts.ErrorsGamePlayersInvalid
	}
	g.deck = NewDeck(g.rng)
	for _, p := range g.roster {
		cards, err := g.deck.Draw(consts.HandSize)
		if err != nil {
			return err
		}
		p.Equip(NewHand(cards...), NewRevolver(g.rng))
		g.emit(event.HandDealt, p.ID(), "%s", card.Join(cards))
	}
	g.invalidate()
	g.state = Started
	g.roundIndex = 0
	g.emit(event.GameStarted, 0, "game started with %d players", len(g.roster))
	g.startRound()
	return nil
}

// Reset returns a finished game to the lobby so the same roster can replay.
func (g *Game) Reset() error {
	switch g.state {
	case NotStarted:
		return consts.ErrorsGameNotStarted
	case Started:
		return consts.ErrorsGameStarted
	}
	for _, p := range g.roster {
		p.Equip(NewHand(), nil)
	}
	g.invalidate()
	g.state = NotStarted
	g.roundIndex = 0
	return nil
}

func (g *Game) Claim(p Player, count int, cards []card.Card, rank card.Rank) (*Claim, error) {
	if err := g.playable(); err != nil {
		return nil, err
	}
	round := g.Round()
	claim, err := round.Claim(p, count, cards, rank)
	if err != nil {
		return nil, err
	}
	g.emit(event.ClaimMade, p.ID(), "%s claims %d %s, %d card(s) left", p.Name(), count, rank, p.Hand().Size())
	if round.Complete() {
		g.nextRound()
		return claim, nil
	}
	g.emitTurn(round.MoveToNextPlayer())
	return claim, nil
}

// Challenge resolves the pending claim; the loser pulls the trigger at once.
func (g *Game) Challenge(challenger Player) (Player, error) {
	if err := g.playable(); err != nil {
		return nil, err
	}
	round := g.Round()
	loser, claim, err := round.Challenge(challenger)
	if err != nil {
		return nil, err
	}
	round.SettleLastClaim()
	g.emit(event.ChallengeMade, challenger.ID(), "%s challenges %s", challenger.Name(), claim)
	if loser.ID() == claim.Owner().ID() {
		g.emit(event.ChallengeResult, loser.ID(), "%s was lying, cards: %s", loser.Name(), card.Join(claim.Cards()))
	} else {
		g.emit(event.ChallengeResult, loser.ID(), "%s told the truth, cards: %s", claim.Owner().Name(), card.Join(claim.Cards()))
	}
	switch {
	case !loser.Alive():
		// the owner already left play, there is nobody to shoot
	case loser.Shoot():
		g.emit(event.PlayerShot, loser.ID(), "%s pulls the trigger... BANG", loser.Name())
		g.emit(event.PlayerEliminated, loser.ID(), "%s is eliminated", loser.Name())
	default:
		g.emit(event.PlayerShot, loser.ID(), "%s pulls the trigger... click", loser.Name())
	}
	g.invalidate()
	if g.checkGameOver() {
		return loser, nil
	}
	if round.Complete() || round.Stalled() {
		g.nextRound()
		return loser, nil
	}
	current := round.Current()
	if current != nil && !current.Alive() {
		current = round.MoveToNextPlayer()
	}
	g.emitTurn(current)
	return loser, nil
}

// IsGameOver holds once at most one roster player is alive.
func (g *Game) IsGameOver() bool {
	return len(g.ActivePlayers()) <= 1
}

func (g *Game) Winner() (Player, error) {
	active := g.ActivePlayers()
	if len(active) != 1 {
		return nil, consts.ErrorsInvalidWinner
	}
	return active[0], nil
}

func (g *Game) ActivePlayers() []Player {
	g.sync()
	players := make([]Player, len(g.active))
	copy(players, g.active)
	return players
}

func (g *Game) EliminatedPlayers() []Player {
	g.sync()
	players := make([]Player, len(g.eliminated))
	copy(players, g.eliminated)
	return players
}

// sync rebuilds the active/eliminated partition when it was invalidated or
// when a cached active player has since been shot outside the game.
func (g *Game) sync() {
	if g.synced && !staleActive(g.active) {
		return
	}
	g.active = make([]Player, 0, len(g.roster))
	g.eliminated = make([]Player, 0)
	for _, p := range g.roster {
		if p.Alive() {
			g.active = append(g.active, p)
		} else {
			g.eliminated = append(g.eliminated, p)
		}
	}
	g.synced = true
}

func (g *Game) invalidate() {
	g.synced = false
}

func (g *Game) playable() error {
	switch g.state {
	case NotStarted:
		return consts.ErrorsGameNotStarted
	case Over:
		return consts.ErrorsGameOver
	}
	return nil
}

// checkGameOver moves a started game to Over and announces the winner. It
// runs once per mutating operation so the announcement is made once.
func (g *Game) checkGameOver() bool {
	if g.state != Started || !g.IsGameOver() {
		return g.state == Over
	}
	g.state = Over
	if winner, err := g.Winner(); err == nil {
		g.emit(event.GameEnded, winner.ID(), "%s wins the game", winner.Name())
	} else {
		g.emit(event.GameEnded, 0, "game ended without a winner")
	}
	return true
}

// afterTurnLoss repairs the turn once a player left play outside a claim or
// challenge.
func (g *Game) afterTurnLoss(previous Player) {
	if g.checkGameOver() {
		return
	}
	round := g.Round()
	if round.Complete() || round.Stalled() {
		g.nextRound()
		return
	}
	current := round.Current()
	if current != nil && (!current.Alive() || (current.Hand().Empty() && round.LastClaim() == nil)) {
		current = round.MoveToNextPlayer()
	}
	if current != nil && (previous == nil || previous.ID() != current.ID()) {
		g.emitTurn(current)
	}
}

func (g *Game) nextRound() {
	round := g.Round()
	g.emit(event.RoundEnded, 0, "round of %s ended, %d claimed", round.Rank(), round.Tally())
	if g.checkGameOver() {
		return
	}
	g.roundIndex = (g.roundIndex + 1) % len(g.rounds)
	g.startRound()
}

func (g *Game) startRound() {
	active := g.ActivePlayers()
	if allEmpty(active) {
		g.redeal(active)
	}
	round := g.Round()
	round.Start(active)
	g.emit(event.RoundStarted, 0, "round of %s started", round.Rank())
	if current := round.Current(); current != nil && current.Hand().Empty() {
		round.current = len(round.players) - 1
		round.MoveToNextPlayer()
	}
	g.emitTurn(round.Current())
}

// redeal hands every active player a fresh hand from a new deck; revolvers
// keep their state.
func (g *Game) redeal(players []Player) {
	g.deck = NewDeck(g.rng)
	for _, p := range players {
		cards, err := g.deck.Draw(consts.HandSize)
		if err != nil {
			return
		}
		p.Hand().Add(cards...)
		g.emit(event.HandDealt, p.ID(), "%s", card.Join(cards))
	}
}

func (g *Game) emitTurn(p Player) {
	if p == nil {
		return
	}
	g.emit(event.TurnChanged, p.ID(), "It's %s turn", p.Name())
}

func (g *Game) emit(t event.Type, playerID int64, format string, args ...interface{}) {
	if g.publisher == nil {
		return
	}
	g.publisher.Emit(t, playerID, format, args...)
}

func allEmpty(players []Player) bool {
	for _, p := range players {
		if !p.Hand().Empty() {
			return false
		}
	}
	return true
}

func staleActive(players []Player) bool {
	for _, p := range players {
		if !p.Alive() {
			return true
		}
	}
	return false
}
