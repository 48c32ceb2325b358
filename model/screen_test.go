package model

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

func newSimulationRenderer(t *testing.T) (*ScreenRenderer, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	r, err := NewScreenRendererOn(s)
	if err != nil {
		t.Fatalf("NewScreenRendererOn: %v", err)
	}
	t.Cleanup(r.Close)
	return r, s
}

func TestScreenRendererDisplay(t *testing.T) {
	r, s := newSimulationRenderer(t)

	if err := r.DisplayStatus("ok"); err != nil {
		t.Fatal(err)
	}
	if err := r.Display(gridOf(t, "10", "01")); err != nil {
		t.Fatal(err)
	}

	cells, width, _ := s.GetContents()
	background := func(x, y int) tcell.Color {
		_, bg, _ := cells[y*width+x].Style.Decompose()
		return bg
	}

	white, black := tcell.NewRGBColor(255, 255, 255), tcell.NewRGBColor(0, 0, 0)
	tests := []struct {
		x, y int
		want tcell.Color
	}{
		{0, 0, white}, {1, 0, white},
		{2, 0, black}, {3, 0, black},
		{0, 1, black}, {1, 1, black},
		{2, 1, white}, {3, 1, white},
	}
	for _, tt := range tests {
		if got := background(tt.x, tt.y); got != tt.want {
			t.Errorf("background at (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	status := cells[2*width : 2*width+2]
	if string(status[0].Runes) != "o" || string(status[1].Runes) != "k" {
		t.Errorf("status line = %q%q, want \"ok\"", status[0].Runes, status[1].Runes)
	}
}

func TestScreenRendererInvalidCell(t *testing.T) {
	r, _ := newSimulationRenderer(t)
	g := NewGrid(1, 1)
	g.Set(0, 0, Cell(2))

	if err := r.Display(g); !errors.Is(err, ErrInvalidCellValue) {
		t.Fatalf("err = %v, want ErrInvalidCellValue", err)
	}
}

func TestScreenRendererWatchQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newSimulationRenderer(t)
			s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
			s.InjectKey(tt.key, tt.ch, tcell.ModNone)

			if err := r.Watch(); !errors.Is(err, ErrQuit) {
				t.Fatalf("Watch err = %v, want ErrQuit", err)
			}
		})
	}
}

func TestScreenRendererWatchStopsOnClose(t *testing.T) {
	r, _ := newSimulationRenderer(t)

	done := make(chan error, 1)
	go func() { done <- r.Watch() }()
	r.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch err = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after Close")
	}
}

type brokenScreen struct {
	tcell.Screen
	err error
}

func (s brokenScreen) Init() error { return s.err }

func TestNewScreenRendererOnInitFailure(t *testing.T) {
	cause := errors.New("no tty")
	_, err := NewScreenRendererOn(brokenScreen{err: cause})
	if !errors.Is(err, ErrDisplay) || !errors.Is(err, cause) {
		t.Fatalf("err = %v, want ErrDisplay wrapping %v", err, cause)
	}
}
