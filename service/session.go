package service

import (
	"fmt"
	"strconv"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/strings"
	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/database"
	"github.com/ratel-online/liar/liar/card"
	"github.com/ratel-online/liar/render"
)

type handler func(s *Session, cmd Command) (string, error)

var handlers = map[string]handler{}

func init() {
	handlers["help"] = help
	handlers["rooms"] = rooms
	handlers["create"] = create
	handlers["join"] = join
	handlers["leave"] = leave
	handlers["start"] = start
	handlers["hand"] = hand
	handlers["claim"] = claim
	handlers["challenge"] = challenge
	handlers["say"] = say
	handlers["reset"] = reset
	handlers["exit"] = exit
}

// Session turns one connection's text commands into room manager calls.
type Session struct {
	manager *database.Manager
	conn    database.Conn
	name    string
}

func NewSession(manager *database.Manager, conn database.Conn, name string) *Session {
	return &Session{manager: manager, conn: conn, name: name}
}

func (s *Session) ID() int64 {
	return s.conn.ID()
}

// Handle runs one command line and returns the text reply for the sender.
// Room-wide effects reach the members as events.
func (s *Session) Handle(line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	h, ok := handlers[cmd.Name]
	if !ok {
		return "", consts.ErrorsInputInvalid
	}
	return h(s, cmd)
}

// Close takes the connection out of its room, if any.
func (s *Session) Close() {
	err := s.manager.LeaveRoom(s.ID())
	if err != nil && err != consts.ErrorsNotInRoom {
		log.Error(err)
	}
}

func help(_ *Session, _ Command) (string, error) {
	return render.Help(), nil
}

func rooms(s *Session, _ Command) (string, error) {
	return render.RoomList(s.manager.Rooms()), nil
}

func create(s *Session, cmd Command) (string, error) {
	if s.manager.User(s.ID()) != nil {
		return "", consts.ErrorsAlreadyInRoom
	}
	var roomID int64
	if len(cmd.Args) > 0 {
		capacity, err := strconv.Atoi(cmd.Args[0])
		if err != nil || capacity < consts.MinPlayers || capacity > consts.MaxPlayers {
			return "", consts.ErrorsInputInvalid
		}
		roomID = s.manager.CreateRoomWithCapacity(capacity)
	} else {
		roomID = s.manager.CreateRoom()
	}
	if _, err := s.manager.JoinRoom(roomID, s.conn, s.name); err != nil {
		s.manager.DeleteRoom(roomID)
		return "", err
	}
	return render.RoomJoined(roomID), nil
}

func join(s *Session, cmd Command) (string, error) {
	if len(cmd.Args) != 1 {
		return "", consts.ErrorsInputInvalid
	}
	roomID, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return "", consts.ErrorsInputInvalid
	}
	if _, err := s.manager.JoinRoom(roomID, s.conn, s.name); err != nil {
		return "", err
	}
	return render.RoomJoined(roomID), nil
}

func leave(s *Session, _ Command) (string, error) {
	if err := s.manager.LeaveRoom(s.ID()); err != nil {
		return "", err
	}
	return "You left the room.\n", nil
}

func start(s *Session, _ Command) (string, error) {
	return "", s.manager.StartGame(s.ID())
}

func hand(s *Session, _ Command) (string, error) {
	cards, err := s.manager.Hand(s.ID())
	if err != nil {
		return "", err
	}
	rank, err := s.manager.Rank(s.ID())
	return render.Hand(cards, rank, err == nil), nil
}

// claim accepts "claim A K" or "claim 2 A K"; without a count the number of
// cards played is claimed.
func claim(s *Session, cmd Command) (string, error) {
	args := cmd.Args
	count := -1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			count = n
			args = args[1:]
		}
	}
	if len(args) == 0 {
		return "", consts.ErrorsInputInvalid
	}
	cards, err := card.ParseAll(args)
	if err != nil {
		return "", consts.ErrorsInvalidCard
	}
	if count < 0 {
		count = len(cards)
	}
	rank, err := s.manager.Rank(s.ID())
	if err != nil {
		return "", err
	}
	if err := s.manager.Claim(s.ID(), count, cards, rank); err != nil {
		return "", err
	}
	return fmt.Sprintf("You claimed %d %s.\n", count, rank), nil
}

func challenge(s *Session, _ Command) (string, error) {
	return "", s.manager.Challenge(s.ID())
}

func say(s *Session, cmd Command) (string, error) {
	msg := cmd.Rest()
	if msg == "" {
		return "", consts.ErrorsInputInvalid
	}
	return "", s.manager.Say(s.ID(), strings.Desensitize(msg))
}

func reset(s *Session, _ Command) (string, error) {
	if err := s.manager.Reset(s.ID()); err != nil {
		return "", err
	}
	return "Back in the lobby, type 'start' to play again.\n", nil
}

func exit(_ *Session, _ Command) (string, error) {
	return "", consts.ErrorsExist
}
