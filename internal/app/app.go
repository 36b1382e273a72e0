package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/infotainment-menu/internal/console"
	"github.com/atomicstack/infotainment-menu/internal/logging/events"
	"github.com/atomicstack/infotainment-menu/internal/menu"
	"github.com/atomicstack/infotainment-menu/internal/theme"
	"github.com/atomicstack/infotainment-menu/internal/ui"
	"github.com/atomicstack/infotainment-menu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Host modes.
const (
	ModeAuto    = "auto"
	ModeConsole = "console"
	ModeTUI     = "tui"
)

// Config describes user-provided application options.
type Config struct {
	Mode       string
	Theme      string
	StartPath  string
	MenuFile   string
	Width      int
	Height     int
	ShowFooter bool
}

// ValidMode reports whether mode names a known host.
func ValidMode(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto, ModeConsole, ModeTUI:
		return true
	}
	return false
}

// Run executes the navigator on the process's standard streams.
func Run(cfg Config) error {
	return RunWithIO(context.Background(), cfg, os.Stdin, os.Stdout)
}

// RunWithIO executes the navigator reading from in and writing to out.
func RunWithIO(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	tree, err := loadTree(cfg.MenuFile)
	if err != nil {
		return err
	}
	nav, err := newNavigator(tree, cfg.StartPath)
	if err != nil {
		return err
	}
	mode := resolveMode(cfg.Mode, in, out)
	events.App.Mode(mode)
	switch mode {
	case ModeTUI:
		err = runTUI(ctx, cfg, nav, in, out)
	default:
		err = console.New(nav, in, out).Run(ctx)
	}
	events.App.Exit(err)
	return err
}

func loadTree(path string) (*menu.Tree, error) {
	if strings.TrimSpace(path) == "" {
		return menu.Build(), nil
	}
	tree, err := menu.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	return tree, nil
}

func newNavigator(tree *menu.Tree, startPath string) (*state.Navigator, error) {
	nav := state.NewNavigator(tree)
	segments := menu.SplitPath(startPath)
	if len(segments) == 0 {
		return nav, nil
	}
	indices, err := tree.Resolve(segments)
	if err != nil {
		return nil, fmt.Errorf("resolve start menu: %w", err)
	}
	if err := nav.Follow(indices); err != nil {
		return nil, fmt.Errorf("open start menu: %w", err)
	}
	events.Nav.Start(tree.Path(nav.Current()))
	return nav, nil
}

func resolveMode(mode string, in io.Reader, out io.Writer) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeConsole:
		return ModeConsole
	case ModeTUI:
		return ModeTUI
	}
	if isTerminal(in) && isTerminal(out) {
		return ModeTUI
	}
	return ModeConsole
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func runTUI(ctx context.Context, cfg Config, nav *state.Navigator, in io.Reader, out io.Writer) error {
	styles, ok := theme.Lookup(cfg.Theme)
	if !ok {
		styles = theme.Default()
	}
	model := ui.NewModel(nav, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Styles:     styles,
	})
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
