package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// maxLineBytes bounds a single board row, line terminator included
const maxLineBytes = 1 << 20

// LoadFromText parses a board from rows of '0' (dead) and '1' (alive)
// characters. The width is taken from the first row and every other row must
// match it.
func LoadFromText(lines []string) (*Board, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "[LoadFromText] no rows")
	}

	width := len(strings.TrimSuffix(lines[0], "\r"))
	if width == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "[LoadFromText] line 1 is empty")
	}

	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		rows[y] = make([]Cell, 0, width)
		for x, ch := range line {
			if x >= width {
				break
			}
			switch ch {
			case '0':
				rows[y] = append(rows[y], Dead)
			case '1':
				rows[y] = append(rows[y], Alive)
			default:
				return nil, errors.Wrapf(ErrMalformedInput,
					"[LoadFromText] line %d column %d: unexpected character %q, want 0 or 1", y+1, x+1, ch)
			}
		}
		if len(line) != width {
			return nil, errors.Wrapf(ErrInconsistentRowWidth,
				"[LoadFromText] line %d has %d cells, line 1 has %d", y+1, len(line), width)
		}
	}

	g, err := NewGridFromRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, "[LoadFromText]")
	}
	return NewBoard(g)
}

// LoadFromReader reads every line of r and parses them with LoadFromText.
func LoadFromReader(r io.Reader) (*Board, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, errors.Wrapf(ErrMalformedInput,
				"[LoadFromReader] line %d is longer than %d bytes", len(lines)+1, maxLineBytes)
		}
		return nil, errors.Wrap(err, "[LoadFromReader] failed to read board")
	}
	return LoadFromText(lines)
}

// LoadFromFile loads the initial board from a text file.
func LoadFromFile(filename string) (*Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &FileAccessError{Path: filename, Err: err}
	}
	defer f.Close()

	board, err := LoadFromReader(f)
	if err != nil {
		if isParseError(err) {
			return nil, errors.Wrapf(err, "[LoadFromFile] %s", filename)
		}
		return nil, &FileAccessError{Path: filename, Err: err}
	}
	return board, nil
}

func isParseError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrInconsistentRowWidth)
}
