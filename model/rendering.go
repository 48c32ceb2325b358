package model

import (
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	unixClearCmd = "clear"
)

// Renderer presents generations on a display
type Renderer interface {
	Display(g *Grid) error
	Clear() error
}

// StatusDisplayer is implemented by renderers that can show a status line
// above or below the grid
type StatusDisplayer interface {
	DisplayStatus(line string) error
}

// TerminalRenderer prints each cell as a black (dead) or white (alive)
// two-character block using 24-bit ANSI colors. Without color, dead cells are
// left blank.
type TerminalRenderer struct {
	out      io.Writer
	alive    *color.Color
	dead     *color.Color
	colored  *bool // nil follows color.NoColor
	clearCmd []string
}

// NewTerminalRenderer creates a renderer writing frames to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{
		out:      out,
		alive:    color.RGB(255, 255, 255),
		dead:     color.RGB(0, 0, 0),
		clearCmd: clearCommand(runtime.GOOS),
	}
}

// SetColor forces colored output on or off; by default color is used only
// when stdout is a terminal
func (r *TerminalRenderer) SetColor(enabled bool) {
	r.colored = &enabled
	for _, c := range []*color.Color{r.alive, r.dead} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) error {
	var (
		sb    strings.Builder
		alive = r.alive.Sprint(gridPosBlock)
		dead  = gridPosEmpty
	)
	if r.useColor() {
		dead = r.dead.Sprint(gridPosBlock)
	}
	for y := range g.height {
		for x := range g.width {
			switch c := g.cells[y][x]; c {
			case Alive:
				sb.WriteString(alive)
			case Dead:
				sb.WriteString(dead)
			default:
				return invalidCell(c, x, y)
			}
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return &DisplayError{Op: "Display", Err: err}
	}
	return nil
}

// DisplayStatus prints line ahead of the next frame
func (r *TerminalRenderer) DisplayStatus(line string) error {
	if _, err := io.WriteString(r.out, line+"\n"); err != nil {
		return &DisplayError{Op: "DisplayStatus", Err: err}
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(r.clearCmd[0], r.clearCmd[1:]...)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		return &DisplayError{Op: "Clear", Err: errors.Wrapf(err, "running %s", strings.Join(r.clearCmd, " "))}
	}
	return nil
}

func (r *TerminalRenderer) useColor() bool {
	if r.colored != nil {
		return *r.colored
	}
	return !color.NoColor
}

func clearCommand(goos string) []string {
	if goos == "windows" {
		return []string{"cmd", "/c", "cls"}
	}
	return []string{unixClearCmd}
}
