package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

const (
	IsStart = consts.IsStart

	MinPlayers = 2
	MaxPlayers = 4

	// CardsPerRank is both the deck composition per rank and the claimed-card
	// tally that completes a round.
	CardsPerRank  = 6
	HandSize      = 5
	MaxClaimCards = 3
	Chambers      = 6

	RoomStateWaiting = 1
	RoomStateRunning = 2
	RoomStateOver    = 3

	AuthTimeout = 3 * time.Second
	SendBuffer  = 64
)

var RoomStates = map[int]string{
	RoomStateWaiting: "Waiting",
	RoomStateRunning: "Running",
	RoomStateOver:    "Over",
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist         = NewErr(1, true, "Exist. ")
	ErrorsAuthFail      = NewErr(1, true, "Auth fail. ")
	ErrorsInputInvalid  = NewErr(1, false, "Input invalid. ")
	ErrorsRoomInvalid   = NewErr(1, false, "Room invalid. ")
	ErrorsAlreadyInRoom = NewErr(1, false, "Already in a room. ")
	ErrorsNotInRoom     = NewErr(1, false, "Not in a room. ")
	ErrorsInternal      = NewErr(1, false, "Internal error. ")

	ErrorsRoomPlayersIsFull      = NewErr(2, false, "Room players is full. ")
	ErrorsJoinFailForRoomRunning = NewErr(2, false, "Join fail, room is running. ")
	ErrorsGamePlayersInvalid     = NewErr(2, false, "Game players invalid. ")

	ErrorsGameStarted    = NewErr(3, false, "Game already started. ")
	ErrorsGameNotStarted = NewErr(3, false, "Game not started. ")
	ErrorsGameOver       = NewErr(3, false, "Game is over. ")
	ErrorsInvalidWinner  = NewErr(3, false, "No single winner yet. ")
	ErrorsPlayerExists   = NewErr(3, false, "Player already seated. ")
	ErrorsPlayerUnknown  = NewErr(3, false, "Player not seated. ")
	ErrorsPlayerDead     = NewErr(3, false, "Player is eliminated. ")

	ErrorsInvalidClaim  = NewErr(4, false, "Invalid claim. ")
	ErrorsClaimCount    = NewErr(4, false, "Claim count must match the cards played. ")
	ErrorsNotYourTurn   = NewErr(4, false, "Not your turn. ")
	ErrorsNoActiveClaim = NewErr(4, false, "No claim to challenge. ")
	ErrorsSelfChallenge = NewErr(4, false, "Cannot challenge your own claim. ")
	ErrorsInvalidCard   = NewErr(4, false, "Card not in hand. ")
	ErrorsEmptyHand     = NewErr(4, false, "Hand is empty. ")
	ErrorsDeckExhausted = NewErr(4, false, "Deck exhausted. ")
)
