package events

import "github.com/atomicstack/infotainment-menu/internal/logging"

type NavTracer struct{}

type CommandTracer struct{}

type ConsoleTracer struct{}

type UITracer struct{}

var (
	Nav     = NavTracer{}
	Command = CommandTracer{}
	Console = ConsoleTracer{}
	UI      = UITracer{}
)

func (NavTracer) Cursor(node string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"node": node, "cursor": cursor})
}

func (NavTracer) Enter(from, to string, depth int) {
	logging.Trace("menu.enter", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (NavTracer) Back(from, to string, depth int) {
	logging.Trace("menu.back", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (NavTracer) NoSubmenu(node string) {
	logging.Trace("menu.enter.leaf", map[string]interface{}{"node": node})
}

func (NavTracer) AtRoot(node string) {
	logging.Trace("menu.back.root", map[string]interface{}{"node": node})
}

func (NavTracer) Start(path []string) {
	logging.Trace("menu.start", map[string]interface{}{"path": path})
}

func (CommandTracer) Execute(name, node string, cursor int) {
	logging.Trace("command.execute", map[string]interface{}{"command": name, "node": node, "cursor": cursor})
}

func (CommandTracer) Unknown(code int) {
	logging.Trace("command.unknown", map[string]interface{}{"code": code})
}

func (ConsoleTracer) Invalid(input string) {
	logging.Trace("console.invalid", map[string]interface{}{"input": input})
}

func (ConsoleTracer) EOF() {
	logging.Trace("console.eof", nil)
}

func (UITracer) Key(key string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}
