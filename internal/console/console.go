// Package console drives a Navigator from a line-oriented terminal: each
// prompt shows the current menu and a numbered list of navigation options,
// and each line read is one choice.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/infotainment-menu/internal/format/table"
	"github.com/atomicstack/infotainment-menu/internal/logging/events"
	"github.com/atomicstack/infotainment-menu/internal/ui/command"
	"github.com/atomicstack/infotainment-menu/internal/ui/state"
)

const (
	promptText = "Enter your choice: "
	// maxChoiceLen bounds the bytes kept from one input line; longer lines
	// are drained and rejected as invalid.
	maxChoiceLen = 256
)

// Session reads choices from in and writes menus and messages to out.
type Session struct {
	nav     *state.Navigator
	bus     *command.Bus
	in      *bufio.Reader
	out     io.Writer
	options []string
}

// New prepares a console session for nav.
func New(nav *state.Navigator, in io.Reader, out io.Writer) *Session {
	return &Session{
		nav:     nav,
		bus:     command.New(),
		in:      bufio.NewReader(in),
		out:     out,
		options: optionLines(),
	}
}

// Run prompts until the user exits, the input ends, or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.prompt(); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}
		input, tooLong, err := s.readChoice()
		if errors.Is(err, io.EOF) {
			events.Console.EOF()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}
		cmd, err := command.Parse(input)
		if tooLong || err != nil {
			events.Console.Invalid(input)
			if err := s.println(command.MessageInvalid); err != nil {
				return err
			}
			continue
		}
		res := s.bus.Execute(s.nav, cmd)
		if res.Info != "" {
			if err := s.println(res.Info); err != nil {
				return err
			}
		}
		if res.Quit {
			return nil
		}
	}
}

// readChoice returns the next input line without its terminator. A line
// longer than maxChoiceLen is consumed in full and reported as tooLong.
func (s *Session) readChoice() (line string, tooLong bool, err error) {
	var buf []byte
	read := false
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}
		read = true
		if !tooLong {
			if len(buf)+len(chunk) > maxChoiceLen {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

func (s *Session) prompt() error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.nav.Render())
	b.WriteString("\n\nNavigation Options:\n")
	for _, line := range s.options {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(promptText)
	_, err := io.WriteString(s.out, b.String())
	return err
}

func (s *Session) println(msg string) error {
	if _, err := fmt.Fprintln(s.out, msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func optionLines() []string {
	opts := command.Options()
	rows := make([][]string, len(opts))
	for i, opt := range opts {
		rows[i] = []string{opt.Code + ".", opt.Label}
	}
	return table.FormatWithGap(rows, []table.Alignment{table.AlignRight, table.AlignLeft}, " ")
}
