package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/ratel-online/liar/database"
	"github.com/ratel-online/liar/liar/card"
)

var (
	title = color.New(color.FgHiYellow).SprintfFunc()
	alert = color.New(color.FgHiRed).SprintfFunc()
)

func Welcome(name string) string {
	return fmt.Sprintf("Hi %s, Welcome to the liar's bar! Type 'help' for commands.\n", name)
}

func Help() string {
	buf := bytes.Buffer{}
	buf.WriteString(title("Commands\n"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "rooms", "list rooms"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "create [capacity]", "create a room and join it"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "join <id>", "join a room"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "start", "start the game"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "hand", "show your cards"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "claim [n] <cards...>", "play cards face down, e.g. claim A K"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "liar", "challenge the last claim"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "say <msg>", "chat with the room"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "reset", "back to the lobby after a game"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "leave", "leave the room"))
	buf.WriteString(fmt.Sprintf("%-24s%s\n", "exit", "disconnect"))
	return buf.String()
}

func RoomList(rooms []database.RoomInfo) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s%-10s\n", "ID", "Players", "State"))
	for _, room := range rooms {
		players := fmt.Sprintf("%d/%d", room.Players, room.Capacity)
		buf.WriteString(fmt.Sprintf("%-10d%-10s%-10s\n", room.ID, players, room.StateDesc))
	}
	return buf.String()
}

func RoomJoined(room int64) string {
	return fmt.Sprintf("You are in room %d, type 'start' when everyone is here.\n", room)
}

// Hand shows the player's cards and, once started, the rank in play.
func Hand(cards []card.Card, rank card.Rank, started bool) string {
	buf := bytes.Buffer{}
	if started {
		buf.WriteString(fmt.Sprintf("Round of %s\n", title("%s", rank)))
	}
	if len(cards) == 0 {
		buf.WriteString("Your hand is empty.\n")
		return buf.String()
	}
	buf.WriteString(fmt.Sprintf("Your hand: %s\n", card.Join(cards)))
	return buf.String()
}

func Error(err error) string {
	return alert("%s\n", err.Error())
}
