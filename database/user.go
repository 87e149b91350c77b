package database

import (
	"fmt"

	"github.com/ratel-online/liar/liar/game"
)

// User is a connected member of a room. It is seated at the room's game
// through its embedded Player.
type User struct {
	game.Player

	RoomID int64 `json:"roomId"`

	client *client
}

func newUser(conn Conn, name string, roomID int64, buffer int) *User {
	return &User{
		Player: game.NewPlayer(conn.ID(), name),
		RoomID: roomID,
		client: newClient(conn, buffer),
	}
}

func (u *User) Send(data []byte) bool {
	return u.client.send(data)
}

func (u *User) String() string {
	return fmt.Sprintf("%s[%d]", u.Name(), u.ID())
}
