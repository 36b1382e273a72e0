package command

import (
	"errors"
	"strconv"
	"strings"
)

// Command is one navigation request. The numeric values double as the
// console menu codes.
type Command int

const (
	MoveDown Command = iota + 1
	MoveUp
	EnterSubmenu
	GoBack
	Exit
)

// ErrInvalidChoice is returned by Parse for input outside the command set.
var ErrInvalidChoice = errors.New("invalid choice")

// Messages shown to the user for informational outcomes.
const (
	MessageNoSubmenu = "No submenu to enter."
	MessageAtRoot    = "You are already at the root menu."
	MessageExit      = "Exiting the menu system..."
	MessageInvalid   = "Invalid choice. Please try again."
)

var labels = map[Command]string{
	MoveDown:     "Move down",
	MoveUp:       "Move up",
	EnterSubmenu: "Enter submenu",
	GoBack:       "Go back to the parent menu",
	Exit:         "Exit",
}

func (c Command) String() string {
	switch c {
	case MoveDown:
		return "move-down"
	case MoveUp:
		return "move-up"
	case EnterSubmenu:
		return "enter-submenu"
	case GoBack:
		return "go-back"
	case Exit:
		return "exit"
	default:
		return "command(" + strconv.Itoa(int(c)) + ")"
	}
}

// Label returns the prompt text for the command.
func (c Command) Label() string {
	return labels[c]
}

// Valid reports whether c is one of the known commands.
func (c Command) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Parse maps a console choice such as "3" to its command.
func Parse(choice string) (Command, error) {
	code, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return 0, ErrInvalidChoice
	}
	cmd := Command(code)
	if !cmd.Valid() {
		return 0, ErrInvalidChoice
	}
	return cmd, nil
}

// Option is one numbered entry of the navigation prompt.
type Option struct {
	Code    string
	Label   string
	Command Command
}

// Options lists the navigation prompt in code order.
func Options() []Option {
	all := []Command{MoveDown, MoveUp, EnterSubmenu, GoBack, Exit}
	opts := make([]Option, len(all))
	for i, cmd := range all {
		opts[i] = Option{Code: strconv.Itoa(int(cmd)), Label: cmd.Label(), Command: cmd}
	}
	return opts
}
