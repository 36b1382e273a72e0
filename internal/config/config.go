package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/infotainment-menu/internal/app"
	"github.com/atomicstack/infotainment-menu/internal/theme"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMode     = "INFOTAINMENT_MENU_MODE"
	envTheme    = "INFOTAINMENT_MENU_THEME"
	envStart    = "INFOTAINMENT_MENU_START"
	envMenuFile = "INFOTAINMENT_MENU_FILE"
	envWidth    = "INFOTAINMENT_MENU_WIDTH"
	envHeight   = "INFOTAINMENT_MENU_HEIGHT"
	envFooter   = "INFOTAINMENT_MENU_FOOTER"
	envTrace    = "INFOTAINMENT_MENU_TRACE"
	envLogFile  = "INFOTAINMENT_MENU_LOG_FILE"
)

// LoadArgs parses configuration from CLI arguments, falling back to the
// supplied environment for anything not given on the command line.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("infotainment-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	mode := fs.String("mode", envOrDefault(env, envMode, app.ModeAuto), "host to run: auto, console, or tui (auto picks tui on a terminal)")
	themeName := fs.String("theme", envOrDefault(env, envTheme, "classic"), "colour theme for the tui: "+strings.ToLower(strings.Join(theme.Names(), ", ")))
	start := fs.String("start", envOrDefault(env, envStart, ""), "slash-separated menu path to open at startup, e.g. Settings/Audio")
	menuFile := fs.String("menu-file", envOrDefault(env, envMenuFile, ""), "YAML file describing a custom menu hierarchy")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "show key help below the menu")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Mode:       strings.ToLower(strings.TrimSpace(*mode)),
			Theme:      strings.TrimSpace(*themeName),
			StartPath:  *start,
			MenuFile:   *menuFile,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"mode":     *mode,
			"theme":    *themeName,
			"start":    *start,
			"menuFile": *menuFile,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects unknown modes and themes.
func Validate(cfg Config) error {
	if !app.ValidMode(cfg.App.Mode) {
		return fmt.Errorf("unknown mode %q (want %s, %s, or %s)", cfg.App.Mode, app.ModeAuto, app.ModeConsole, app.ModeTUI)
	}
	if _, ok := theme.Lookup(cfg.App.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", cfg.App.Theme, strings.Join(theme.Names(), ", "))
	}
	return nil
}
