package event

import (
	"fmt"
	"time"
)

type Type string

const (
	GameStarted      Type = "game_started"
	GameEnded        Type = "game_ended"
	RoundStarted     Type = "round_started"
	RoundEnded       Type = "round_ended"
	ClaimMade        Type = "claim_made"
	ChallengeMade    Type = "challenge_made"
	ChallengeResult  Type = "challenge_result"
	PlayerShot       Type = "player_shot"
	PlayerEliminated Type = "player_eliminated"
	PlayerRemoved    Type = "player_removed"
	TurnChanged      Type = "turn_changed"
	HandDealt        Type = "hand_dealt"
	RoomJoined       Type = "room_joined"
	RoomLeft         Type = "room_left"
	Chat             Type = "chat"
)

type Event struct {
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	PlayerID  int64     `json:"playerId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func New(t Type, playerID int64, format string, args ...interface{}) Event {
	return Event{
		Type:      t,
		Message:   fmt.Sprintf(format, args...),
		PlayerID:  playerID,
		Timestamp: time.Now(),
	}
}

func (e Event) String() string {
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}
