package model

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// cellColumns is the number of terminal columns a cell occupies
const cellColumns = 2

var (
	screenAlive = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 255)).Background(tcell.NewRGBColor(255, 255, 255))
	screenDead  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 0, 0)).Background(tcell.NewRGBColor(0, 0, 0))
)

// ScreenRenderer draws generations on a full-screen tcell display
type ScreenRenderer struct {
	screen    tcell.Screen
	status    string
	closeOnce sync.Once
}

// NewScreenRenderer takes over the terminal
func NewScreenRenderer() (*ScreenRenderer, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &DisplayError{Op: "NewScreenRenderer", Err: err}
	}
	return NewScreenRendererOn(s)
}

// NewScreenRendererOn initializes s and renders onto it
func NewScreenRendererOn(s tcell.Screen) (*ScreenRenderer, error) {
	if err := s.Init(); err != nil {
		return nil, &DisplayError{Op: "NewScreenRendererOn", Err: err}
	}
	s.HideCursor()
	s.Clear()
	return &ScreenRenderer{screen: s}, nil
}

// Display draws the grid, followed by the pending status line, and shows it
func (r *ScreenRenderer) Display(g *Grid) error {
	for y := range g.height {
		for x := range g.width {
			var style tcell.Style
			switch c := g.cells[y][x]; c {
			case Alive:
				style = screenAlive
			case Dead:
				style = screenDead
			default:
				return invalidCell(c, x, y)
			}
			for i := range cellColumns {
				r.screen.SetContent(x*cellColumns+i, y, ' ', nil, style)
			}
		}
	}

	for i, ch := range []rune(r.status) {
		r.screen.SetContent(i, g.height, ch, nil, tcell.StyleDefault)
	}

	r.screen.Show()
	return nil
}

// DisplayStatus sets the line drawn under the grid by the next Display
func (r *ScreenRenderer) DisplayStatus(line string) error {
	r.status = line
	return nil
}

// Clear blanks the screen
func (r *ScreenRenderer) Clear() error {
	r.screen.Clear()
	return nil
}

// Watch blocks until the user presses Esc, Ctrl-C or q, returning ErrQuit,
// or until Close is called, returning nil
func (r *ScreenRenderer) Watch() error {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return ErrQuit
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Close restores the terminal; it is safe to call more than once
func (r *ScreenRenderer) Close() {
	r.closeOnce.Do(r.screen.Fini)
}
