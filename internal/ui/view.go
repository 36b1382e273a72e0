package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const emptyMenuText = "(no entries)"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	m.nav.EnsureCursorVisible(m.maxVisibleItems())
	snap := m.nav.Snapshot()
	start, items := snap.Visible(m.maxVisibleItems())
	lines := make([]styledLine, 0, len(snap.Items)+5)
	lines = append(lines, styledLine{text: strings.Join(snap.Path, menuHeaderSeparator), style: m.styles.Header})
	if len(snap.Items) == 0 {
		lines = append(lines, styledLine{text: emptyMenuText, style: m.styles.Empty})
	}
	for i, item := range items {
		lines = append(lines, m.buildItemLine(item, start+i == snap.Cursor))
	}
	if m.infoMsg != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.infoMsg, style: m.styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.View(m.keys)})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// maxVisibleItems returns how many item rows fit under the header, info and
// footer lines, or -1 when the height is unbounded.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 1
	if m.infoMsg != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) buildItemLine(label string, selected bool) styledLine {
	indicator := m.styles.Indicator
	if indicator == "" {
		indicator = ">"
	}
	if !selected {
		indicator = strings.Repeat(" ", ansi.StringWidth(indicator))
		return styledLine{text: indicator + " " + label, style: m.styles.Item}
	}
	text := indicator + " " + label
	if m.width > 0 {
		if pad := m.width - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         m.styles.SelectedItem,
		prefixStyle:   m.styles.SelectedItemIndicator,
		highlightFrom: len([]rune(indicator)),
	}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
