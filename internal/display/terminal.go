// Package display renders sessions for people: the live watch screen and
// the record listing.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ANSI control sequences.
const (
	enterAltScreen = "\033[?1049h"
	leaveAltScreen = "\033[?1049l"
	hideCursor     = "\033[?25l"
	showCursor     = "\033[?25h"
	clearScreen    = "\033[2J"
	cursorHome     = "\033[H"
)

// Fallback size when the output is not a terminal or its size is unknown.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Terminal draws centered text on the alternate screen. When the output
// is not a terminal it degrades to printing one line per frame.
type Terminal struct {
	out   io.Writer
	size  func() (int, int, error)
	plain bool
	inAlt bool
}

// NewTerminal returns a Terminal writing to f.
func NewTerminal(f *os.File) *Terminal {
	fd := int(f.Fd())
	return &Terminal{
		out:   f,
		size:  func() (int, int, error) { return term.GetSize(fd) },
		plain: !term.IsTerminal(fd),
	}
}

// NewWriterTerminal returns a Terminal over an arbitrary writer with a
// fixed size. Plain terminals skip all escape sequences.
func NewWriterTerminal(w io.Writer, width, height int, plain bool) *Terminal {
	return &Terminal{
		out:   w,
		size:  func() (int, int, error) { return width, height, nil },
		plain: plain,
	}
}

// Center clears the screen and draws text in the middle of it, each line
// centered horizontally and the block centered vertically.
func (t *Terminal) Center(text string) error {
	if t.plain {
		_, err := fmt.Fprintln(t.out, text)
		return err
	}

	var b strings.Builder
	if !t.inAlt {
		b.WriteString(enterAltScreen)
		b.WriteString(hideCursor)
		t.inAlt = true
	}
	b.WriteString(clearScreen)
	b.WriteString(cursorHome)

	cols, rows := t.dimensions()
	b.WriteString(lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, text))

	_, err := io.WriteString(t.out, b.String())
	return err
}

// Finish restores the normal screen and prints text on it.
func (t *Terminal) Finish(text string) error {
	if err := t.Close(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.out, text)
	return err
}

// Close leaves the alternate screen if it was entered. It is safe to call
// more than once.
func (t *Terminal) Close() error {
	if !t.inAlt {
		return nil
	}
	t.inAlt = false
	_, err := io.WriteString(t.out, showCursor+leaveAltScreen)
	return err
}

func (t *Terminal) dimensions() (int, int) {
	cols, rows, err := t.size()
	if err != nil || cols <= 0 || rows <= 0 {
		return defaultWidth, defaultHeight
	}
	return cols, rows
}
