package database

import (
	"sort"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
)

// roomStore is the concurrent room-id to Room index. Locking a room is the
// caller's job; the store only guards its own buckets.
type roomStore struct {
	rooms *hashmap.HashMap
}

func newRoomStore() roomStore {
	return roomStore{rooms: hashmap.New()}
}

func (s roomStore) set(id int64, room *Room) {
	s.rooms.Set(id, room)
}

func (s roomStore) get(id int64) (*Room, bool) {
	v, ok := s.rooms.Get(id)
	if !ok {
		return nil, false
	}
	room, ok := v.(*Room)
	if !ok {
		log.Errorf("room store holds %T under id %d\n", v, id)
	}
	return room, ok
}

func (s roomStore) del(id int64) {
	s.rooms.Del(id)
}

func (s roomStore) list() []*Room {
	list := make([]*Room, 0)
	s.rooms.Foreach(func(e *hashmap.Entry) {
		if room, ok := e.Value().(*Room); ok {
			list = append(list, room)
		}
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}
