package ui

import (
	"reflect"

	"github.com/atomicstack/infotainment-menu/internal/theme"
	"github.com/atomicstack/infotainment-menu/internal/ui/command"
	"github.com/atomicstack/infotainment-menu/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const menuHeaderSeparator = " → "

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Styles     *theme.Styles
}

// Model implements the Bubble Tea model for the menu navigator.
type Model struct {
	nav         *state.Navigator
	bus         *command.Bus
	keys        keyMap
	help        help.Model
	styles      *theme.Styles
	infoMsg     string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps nav in a Bubble Tea model.
func NewModel(nav *state.Navigator, opts Options) *Model {
	if nav == nil {
		nav = state.NewNavigator(nil)
	}
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		nav:        nav,
		bus:        command.New(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		styles:     styles,
		showFooter: opts.ShowFooter,
	}
	if styles.Footer != nil {
		m.help.Styles.ShortKey = *styles.Footer
		m.help.Styles.ShortDesc = styles.Footer.Faint(true)
		m.help.Styles.ShortSeparator = *styles.Footer
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Navigator exposes the navigator driven by the model.
func (m *Model) Navigator() *state.Navigator {
	return m.nav
}

// Quitting reports whether the user asked to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	return m.handlers[reflect.TypeOf(msg)]
}
