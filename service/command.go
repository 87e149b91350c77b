package service

import (
	"strings"

	"github.com/ratel-online/liar/consts"
)

type Command struct {
	Name string
	Args []string
}

var aliases = map[string]string{
	"ls":     "rooms",
	"new":    "create",
	"j":      "join",
	"h":      "hand",
	"c":      "claim",
	"play":   "claim",
	"liar":   "challenge",
	"l":      "challenge",
	"chat":   "say",
	"replay": "reset",
	"quit":   "exit",
	"?":      "help",
}

// Parse splits a line such as "claim 2 A K" into a command name and its
// arguments.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, consts.ErrorsInputInvalid
	}
	name := strings.ToLower(fields[0])
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	return Command{Name: name, Args: fields[1:]}, nil
}

// Rest is the raw argument text, for free-form commands like say.
func (c Command) Rest() string {
	return strings.Join(c.Args, " ")
}
