// Package render implements the console presenter: styled headers,
// event lines, and the spectator's cylinder diagram. Presentation is a
// leaf concern; the engine only ever talks to the match.Presenter
// interface, so replacing or silencing this package changes no
// mechanics.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/sixgun/internal/match"
)

const defaultWidth = 80

// Console renders match events to a writer. It satisfies
// match.Presenter.
type Console struct {
	out       io.Writer
	spectator bool
	width     int

	header   lipgloss.Style
	event    lipgloss.Style
	warning  lipgloss.Style
	side     lipgloss.Style
	response lipgloss.Style
	loaded   lipgloss.Style
	empty    lipgloss.Style
	pointer  lipgloss.Style
}

// NewConsole creates a Console. When color is false all styling is
// dropped; when spectator is false, ground-truth lines and the cylinder
// diagram are suppressed so the output can be shared with players.
func NewConsole(out io.Writer, color, spectator bool) *Console {
	c := &Console{
		out:       out,
		spectator: spectator,
		width:     defaultWidth,
	}
	if color {
		c.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
		c.event = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		c.warning = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		c.side = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		c.response = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		c.loaded = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		c.empty = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		c.pointer = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	}
	return c
}

// Banner prints the match banner between dividers.
func (c *Console) Banner(text string) {
	c.Divider("=")
	fmt.Fprintln(c.out, c.header.Render(text))
	c.Divider("=")
}

// Divider prints a full-width divider line of the given character.
func (c *Console) Divider(char string) {
	fmt.Fprintln(c.out, strings.Repeat(char, c.width))
}

// Header prints a centered section header.
func (c *Console) Header(text string) {
	pad := (c.width - lipgloss.Width(text)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(c.out, "\n%s%s\n\n", strings.Repeat(" ", pad), c.header.Render(text))
}

// Event prints a game event line.
func (c *Console) Event(text string) {
	fmt.Fprintln(c.out, c.event.Render("➤ "+text))
}

// Warning prints a warning line.
func (c *Console) Warning(text string) {
	fmt.Fprintln(c.out, c.warning.Render("⚠ "+text))
}

// Spectator prints a ground-truth line, visible only in spectator mode.
func (c *Console) Spectator(text string) {
	if !c.spectator {
		return
	}
	fmt.Fprintln(c.out, c.side.Render("[spectator] "+text))
}

// AgentResponse echoes an agent's raw response with its thinking time.
// Overlong lines are truncated to the console width, ANSI-aware in case
// a model echoes styled text back.
func (c *Console) AgentResponse(player, text string, elapsed time.Duration) {
	c.Header(fmt.Sprintf("%s responds (%.2fs)", player, elapsed.Seconds()))
	for _, line := range strings.Split(text, "\n") {
		if lipgloss.Width(line) > c.width {
			line = ansi.Truncate(line, c.width, "...")
		}
		fmt.Fprintln(c.out, c.response.Render(line))
	}
	c.Divider("-")
}

// Cylinder prints the spectator's revolver diagram: one row per chamber,
// a pointer on the trigger position, and a filled or hollow round marker.
func (c *Console) Cylinder(view match.CylinderView) {
	if !c.spectator {
		return
	}
	var b strings.Builder
	b.WriteString(c.side.Render(fmt.Sprintf("cylinder (%d/%d):", view.Position+1, view.Chambers)))
	b.WriteString("\n")
	for i := 0; i < view.Chambers; i++ {
		marker := "   "
		if i == view.Position {
			marker = c.pointer.Render("👉 ")
		}
		round := c.empty.Render("○")
		if view.Loaded[i] {
			round = c.loaded.Render("●")
		}
		b.WriteString(fmt.Sprintf("%s%s chamber %d\n", marker, round, i+1))
	}
	fmt.Fprint(c.out, b.String())
}
