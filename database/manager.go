package database

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/liar/consts"
	"github.com/ratel-online/liar/liar/card"
	"github.com/ratel-online/liar/liar/event"
	"github.com/ratel-online/liar/liar/game"
)

type Options struct {
	Capacity   int
	SendBuffer int
	Seed       int64
}

// Manager owns every room and the connection to user bookkeeping. Rooms are
// locked one at a time; connMu only guards the connection map and is always
// taken after a room lock, never before.
type Manager struct {
	roomIDs  int64
	capacity int
	buffer   int

	rngMu sync.Mutex
	rng   *rand.Rand

	rooms roomStore

	connMu  sync.Mutex
	conns   map[int64]*User
	joining map[int64]bool
}

func NewManager(opts Options) *Manager {
	if opts.Capacity < consts.MinPlayers || opts.Capacity > consts.MaxPlayers {
		opts.Capacity = consts.MaxPlayers
	}
	if opts.SendBuffer <= 0 {
		opts.SendBuffer = consts.SendBuffer
	}
	return &Manager{
		capacity: opts.Capacity,
		buffer:   opts.SendBuffer,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		rooms:    newRoomStore(),
		conns:    map[int64]*User{},
		joining:  map[int64]bool{},
	}
}

// roomRand hands each room its own generator, since rand.Rand is not safe
// for concurrent use.
func (m *Manager) roomRand() *rand.Rand {
	m.rngMu.Lock()
	defer m.rngMu.Unlock()
	return rand.New(rand.NewSource(m.rng.Int63()))
}

func (m *Manager) CreateRoom() int64 {
	return m.CreateRoomWithCapacity(m.capacity)
}

func (m *Manager) CreateRoomWithCapacity(capacity int) int64 {
	if capacity < consts.MinPlayers || capacity > consts.MaxPlayers {
		capacity = m.capacity
	}
	room := newRoom(atomic.AddInt64(&m.roomIDs, 1), capacity, m.roomRand())
	m.rooms.set(room.ID, room)
	log.Infof("room %d created, capacity %d\n", room.ID, capacity)
	return room.ID
}

func (m *Manager) GetRoom(roomID int64) *Room {
	room, _ := m.rooms.get(roomID)
	return room
}

func (m *Manager) Rooms() []RoomInfo {
	rooms := m.rooms.list()
	infos := make([]RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		room.Lock()
		if !room.closed {
			infos = append(infos, room.Info())
		}
		room.Unlock()
	}
	return infos
}

// User returns the user bound to a connection, or nil.
func (m *Manager) User(connID int64) *User {
	m.connMu.Lock()
	defer m.connMu.Unlock()
	return m.conns[connID]
}

// JoinRoom seats a connection in a room and starts the game once the room
// fills up.
func (m *Manager) JoinRoom(roomID int64, conn Conn, name string) (*User, error) {
	room, ok := m.rooms.get(roomID)
	if !ok {
		return nil, consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.closed {
		return nil, consts.ErrorsRoomInvalid
	}
	if room.Full() {
		return nil, consts.ErrorsRoomPlayersIsFull
	}

	// the connection is held back from other rooms while it is seated here,
	// and only becomes visible once the room lists it
	m.connMu.Lock()
	if _, ok := m.conns[conn.ID()]; ok || m.joining[conn.ID()] {
		m.connMu.Unlock()
		return nil, consts.ErrorsAlreadyInRoom
	}
	m.joining[conn.ID()] = true
	m.connMu.Unlock()

	user := newUser(conn, name, room.ID, m.buffer)
	err := room.AddUser(user)
	m.connMu.Lock()
	delete(m.joining, conn.ID())
	if err == nil {
		m.conns[conn.ID()] = user
	}
	m.connMu.Unlock()
	if err != nil {
		user.client.close()
		return nil, err
	}
	log.Infof("player %s joined room %d\n", user, room.ID)

	if room.Full() {
		if err := room.Start(); err != nil {
			log.Errorf("room %d auto start failed: %v\n", room.ID, err)
		}
	}
	return user, nil
}

// LeaveRoom unbinds a connection. Leaving a running game eliminates the
// player; the last one out deletes the room.
func (m *Manager) LeaveRoom(connID int64) error {
	user := m.User(connID)
	if user == nil {
		return consts.ErrorsNotInRoom
	}
	room, ok := m.rooms.get(user.RoomID)
	if !ok {
		m.unbind(connID, user)
		return nil
	}
	room.Lock()
	defer room.Unlock()
	if m.User(connID) != user {
		return consts.ErrorsNotInRoom
	}
	room.RemoveUser(user)
	m.unbind(connID, user)
	log.Infof("player %s left room %d\n", user, room.ID)
	m.closeIfEmpty(room)
	return nil
}

// DeleteRoom drops a room that has no members; occupied rooms are kept.
func (m *Manager) DeleteRoom(roomID int64) {
	room, ok := m.rooms.get(roomID)
	if !ok {
		return
	}
	room.Lock()
	defer room.Unlock()
	m.closeIfEmpty(room)
}

func (m *Manager) closeIfEmpty(room *Room) {
	if room.closed || room.Size() > 0 {
		return
	}
	room.closed = true
	m.rooms.del(room.ID)
	log.Infof("room %d is empty, removed.\n", room.ID)
}

func (m *Manager) unbind(connID int64, user *User) bool {
	m.connMu.Lock()
	defer m.connMu.Unlock()
	if m.conns[connID] != user {
		return false
	}
	delete(m.conns, connID)
	return true
}

// withRoom runs fn under the lock of the connection's room.
func (m *Manager) withRoom(connID int64, fn func(room *Room, user *User) error) error {
	user := m.User(connID)
	if user == nil {
		return consts.ErrorsNotInRoom
	}
	room, ok := m.rooms.get(user.RoomID)
	if !ok {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.closed || room.user(connID) != user {
		return consts.ErrorsNotInRoom
	}
	return fn(room, user)
}

func (m *Manager) StartGame(connID int64) error {
	return m.withRoom(connID, func(room *Room, _ *User) error {
		return room.Start()
	})
}

func (m *Manager) Claim(connID int64, count int, cards []card.Card, rank card.Rank) error {
	return m.withRoom(connID, func(room *Room, user *User) error {
		_, err := room.game.Claim(user.Player, count, cards, rank)
		return err
	})
}

func (m *Manager) Challenge(connID int64) error {
	return m.withRoom(connID, func(room *Room, user *User) error {
		_, err := room.game.Challenge(user.Player)
		return err
	})
}

// Rank is the rank of the round the connection's game is playing.
func (m *Manager) Rank(connID int64) (card.Rank, error) {
	var rank card.Rank
	err := m.withRoom(connID, func(room *Room, _ *User) error {
		if room.game.State() != game.Started {
			return consts.ErrorsGameNotStarted
		}
		rank = room.game.Round().Rank()
		return nil
	})
	return rank, err
}

func (m *Manager) Hand(connID int64) ([]card.Card, error) {
	var cards []card.Card
	err := m.withRoom(connID, func(_ *Room, user *User) error {
		cards = user.Hand().Cards()
		return nil
	})
	return cards, err
}

func (m *Manager) Reset(connID int64) error {
	return m.withRoom(connID, func(room *Room, _ *User) error {
		return room.game.Reset()
	})
}

func (m *Manager) Say(connID int64, msg string) error {
	return m.withRoom(connID, func(room *Room, user *User) error {
		room.publisher.Emit(event.Chat, user.ID(), "%s say: %s", user.Name(), msg)
		return nil
	})
}
