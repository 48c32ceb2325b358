package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyInput is returned when a board source contains no rows.
	ErrEmptyInput = errors.New("empty board input")
	// ErrMalformedInput is returned when a board source contains anything other than 0 and 1.
	ErrMalformedInput = errors.New("malformed board input")
	// ErrInconsistentRowWidth is returned when the rows of a board source differ in length.
	ErrInconsistentRowWidth = errors.New("inconsistent row width")
	// ErrInvalidCellValue means a grid holds a value that is neither Dead nor Alive.
	ErrInvalidCellValue = errors.New("invalid cell value")
	// ErrInvalidDimensions is returned for grids without at least one row and column.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrFileAccess matches every *FileAccessError.
	ErrFileAccess = errors.New("board file not readable")
	// ErrDisplay wraps failures to render or clear the display.
	ErrDisplay = errors.New("display failure")
	// ErrQuit is reported by ScreenRenderer.Watch when the user asks to quit.
	ErrQuit = errors.New("quit requested")
)

// FileAccessError reports a board file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("reading board file %q: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFileAccess) match any FileAccessError.
func (e *FileAccessError) Is(target error) bool { return target == ErrFileAccess }

// DisplayError reports a failed render, clear or terminal setup. It matches
// ErrDisplay and unwraps to the underlying cause.
type DisplayError struct {
	Op  string
	Err error
}

func (e *DisplayError) Error() string {
	return fmt.Sprintf("[%s] %v: %v", e.Op, ErrDisplay, e.Err)
}

func (e *DisplayError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDisplay) match any DisplayError.
func (e *DisplayError) Is(target error) bool { return target == ErrDisplay }
