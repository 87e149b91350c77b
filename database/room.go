package database

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/liar/event"
	"github.com/ratel-online/liar/liar/game"
)

// Room binds up to Capacity users to one game. Every field is guarded by the
// embedded mutex, and every event of the room is published while it is held.
type Room struct {
	sync.Mutex

	ID         int64     `json:"id"`
	Capacity   int       `json:"capacity"`
	Creator    int64     `json:"creator"`
	ActiveTime time.Time `json:"activeTime"`

	users     []*User
	game      *game.Game
	publisher *event.Publisher
	closed    bool
}

type RoomInfo struct {
	ID        int64  `json:"id"`
	Players   int    `json:"players"`
	Capacity  int    `json:"capacity"`
	State     int    `json:"state"`
	StateDesc string `json:"stateDesc"`
}

func newRoom(id int64, capacity int, rng *rand.Rand) *Room {
	publisher := event.NewPublisher()
	room := &Room{
		ID:         id,
		Capacity:   capacity,
		ActiveTime: time.Now(),
		users:      make([]*User, 0, capacity),
		game:       game.New(publisher, rng),
		publisher:  publisher,
	}
	publisher.AddListener(event.ListenerFunc(room.deliver))
	return room
}

// Publisher lets callers observe the room's events alongside its members.
func (room *Room) Publisher() *event.Publisher {
	return room.publisher
}

func (room *Room) Game() *game.Game {
	return room.game
}

func (room *Room) Users() []*User {
	users := make([]*User, len(room.users))
	copy(users, room.users)
	return users
}

func (room *Room) Size() int {
	return len(room.users)
}

func (room *Room) Full() bool {
	return len(room.users) >= room.Capacity
}

func (room *Room) State() int {
	switch room.game.State() {
	case game.Started:
		return consts.RoomStateRunning
	case game.Over:
		return consts.RoomStateOver
	}
	return consts.RoomStateWaiting
}

func (room *Room) Info() RoomInfo {
	state := room.State()
	return RoomInfo{
		ID:        room.ID,
		Players:   len(room.users),
		Capacity:  room.Capacity,
		State:     state,
		StateDesc: consts.RoomStates[state],
	}
}

func (room *Room) user(id int64) *User {
	for _, u := range room.users {
		if u.ID() == id {
			return u
		}
	}
	return nil
}

// AddUser seats u at the game. A full or running room is left unchanged.
func (room *Room) AddUser(u *User) error {
	if room.Full() {
		return consts.ErrorsRoomPlayersIsFull
	}
	if room.game.State() != game.NotStarted {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if err := room.game.AddPlayer(u.Player); err != nil {
		return err
	}
	room.users = append(room.users, u)
	if room.Creator == 0 {
		room.Creator = u.ID()
	}
	room.ActiveTime = time.Now()
	room.publisher.Emit(event.RoomJoined, u.ID(), "%s joined room %d (%d/%d)", u.Name(), room.ID, len(room.users), room.Capacity)
	return nil
}

// RemoveUser takes u out of the room. A player leaving a running game is
// eliminated; otherwise they are taken off the roster.
func (room *Room) RemoveUser(u *User) {
	index := -1
	for i, member := range room.users {
		if member.ID() == u.ID() {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}
	switch room.game.State() {
	case game.Started:
		if err := room.game.Eliminate(u.Player); err != nil {
			log.Error(err)
		}
	default:
		if err := room.game.RemovePlayer(u.Player); err != nil {
			log.Error(err)
		}
	}
	room.users = append(room.users[:index:index], room.users[index+1:]...)
	if room.Creator == u.ID() {
		room.Creator = 0
		if len(room.users) > 0 {
			room.Creator = room.users[0].ID()
		}
	}
	room.ActiveTime = time.Now()
	room.publisher.Emit(event.RoomLeft, u.ID(), "%s left room %d (%d/%d)", u.Name(), room.ID, len(room.users), room.Capacity)
	u.client.close()
}

func (room *Room) Start() error {
	if err := room.game.Start(); err != nil {
		return err
	}
	room.ActiveTime = time.Now()
	return nil
}

// broadcast pushes data to every member; dead or slow members are skipped.
func (room *Room) broadcast(data []byte, exclude ...int64) {
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for _, u := range room.users {
		if !excludeSet[u.ID()] {
			u.Send(data)
		}
	}
}

// deliver is the room's listener: private events go to their player only,
// everything else to every member.
func (room *Room) deliver(e event.Event) error {
	data := json.Marshal(e)
	if e.Type == event.HandDealt {
		if u := room.user(e.PlayerID); u != nil {
			u.Send(data)
		}
		return nil
	}
	room.broadcast(data)
	return nil
}
