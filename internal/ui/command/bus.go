package command

import (
	"errors"

	"github.com/atomicstack/infotainment-menu/internal/logging/events"
	"github.com/atomicstack/infotainment-menu/internal/ui/state"
)

// Result describes the outcome of one command.
type Result struct {
	Command Command
	// Changed is true when the cursor, current node, or history moved.
	Changed bool
	// Info carries an informational message for the user, if any.
	Info string
	// Quit asks the host loop to stop requesting commands.
	Quit bool
}

// Bus applies commands to a navigator and traces each transition.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute applies cmd to nav.
func (b *Bus) Execute(nav *state.Navigator, cmd Command) Result {
	from := nav.CurrentName()
	events.Command.Execute(cmd.String(), from, nav.Cursor())
	res := Result{Command: cmd}
	switch cmd {
	case MoveDown:
		res.Changed = nav.MoveDown()
	case MoveUp:
		res.Changed = nav.MoveUp()
	case EnterSubmenu:
		if err := nav.EnterSubmenu(); err != nil {
			res.Info = InfoFor(err)
			events.Nav.NoSubmenu(from)
			return res
		}
		res.Changed = true
		events.Nav.Enter(from, nav.CurrentName(), nav.Depth())
	case GoBack:
		if err := nav.GoBack(); err != nil {
			res.Info = InfoFor(err)
			events.Nav.AtRoot(from)
			return res
		}
		res.Changed = true
		events.Nav.Back(from, nav.CurrentName(), nav.Depth())
	case Exit:
		res.Quit = true
		res.Info = MessageExit
		return res
	default:
		events.Command.Unknown(int(cmd))
		return res
	}
	if res.Changed && (cmd == MoveDown || cmd == MoveUp) {
		events.Nav.Cursor(from, nav.Cursor())
	}
	return res
}

// InfoFor maps a navigator error to its user-facing message.
func InfoFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, state.ErrNoSubmenu):
		return MessageNoSubmenu
	case errors.Is(err, state.ErrAlreadyAtRoot):
		return MessageAtRoot
	default:
		return err.Error()
	}
}
