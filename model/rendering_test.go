package model

import (
	"bytes"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)
	r.SetColor(false)

	if err := r.Display(gridOf(t, "010", "101")); err != nil {
		t.Fatal(err)
	}

	want := "  ██  \n██  ██\n"
	if got := buf.String(); got != want {
		t.Fatalf("Display wrote %q, want %q", got, want)
	}
}

func TestTerminalRendererFollowsNoColor(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })
	color.NoColor = true

	var alive, dead bytes.Buffer
	if err := NewTerminalRenderer(&alive).Display(gridOf(t, "111")); err != nil {
		t.Fatal(err)
	}
	if err := NewTerminalRenderer(&dead).Display(gridOf(t, "000")); err != nil {
		t.Fatal(err)
	}
	if alive.String() == dead.String() {
		t.Fatalf("alive and dead rows both render as %q", alive.String())
	}
	if dead.String() != strings.Repeat(gridPosEmpty, 3)+"\n" {
		t.Fatalf("dead row = %q", dead.String())
	}
}

func TestTerminalRendererColors(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)
	r.SetColor(true)

	if err := r.Display(gridOf(t, "10")); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("no escape sequences in %q", out)
	}
	if !strings.Contains(out, "255;255;255") || !strings.Contains(out, "0;0;0") {
		t.Fatalf("missing white or black color in %q", out)
	}
	if strings.Index(out, "255;255;255") > strings.Index(out, "0;0;0") {
		t.Fatalf("alive cell not drawn first in %q", out)
	}
}

func TestTerminalRendererInvalidCell(t *testing.T) {
	var buf bytes.Buffer
	g := NewGrid(2, 1)
	g.Set(1, 0, Cell(4))

	if err := NewTerminalRenderer(&buf).Display(g); !errors.Is(err, ErrInvalidCellValue) {
		t.Fatalf("err = %v, want ErrInvalidCellValue", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("partial frame written: %q", buf.String())
	}
}

func TestTerminalRendererStatus(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).DisplayStatus("Gen: 3"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Gen: 3\n" {
		t.Fatalf("DisplayStatus wrote %q", buf.String())
	}
}

func TestTerminalRendererClearFailure(t *testing.T) {
	r := NewTerminalRenderer(&bytes.Buffer{})
	r.clearCmd = []string{filepath.Join(t.TempDir(), "no-such-clear")}

	err := r.Clear()
	if !errors.Is(err, ErrDisplay) {
		t.Fatalf("err = %v, want ErrDisplay", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v does not keep the exec cause", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestTerminalRendererWriteFailure(t *testing.T) {
	r := NewTerminalRenderer(failingWriter{})

	err := r.Display(gridOf(t, "1"))
	if !errors.Is(err, ErrDisplay) || !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("Display err = %v, want ErrDisplay wrapping io.ErrClosedPipe", err)
	}
	var de *DisplayError
	if !errors.As(err, &de) || de.Op != "Display" {
		t.Fatalf("err = %#v, want *DisplayError for Display", err)
	}
	if err := r.DisplayStatus("Gen: 1"); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("DisplayStatus err = %v", err)
	}
}

func TestClearCommand(t *testing.T) {
	if got := clearCommand("windows"); strings.Join(got, " ") != "cmd /c cls" {
		t.Errorf("windows clear command = %v", got)
	}
	for _, goos := range []string{"linux", "darwin", "freebsd"} {
		if got := clearCommand(goos); len(got) != 1 || got[0] != "clear" {
			t.Errorf("%s clear command = %v", goos, got)
		}
	}
}
