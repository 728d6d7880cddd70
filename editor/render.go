package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"hecto/terminal"
)

const (
	Name    = "Hecto editor"
	Version = "0.1.0"

	emptyRowMarker = "~"
	goodbye        = "Goodbye."
)

// WelcomeLine is the banner row for a viewport width columns wide: the row
// marker, then the product name centered in the remaining space.
func WelcomeLine(width int) string {
	message := fmt.Sprintf("%s -- version %s", Name, Version)
	padding := max(width-runewidth.StringWidth(message), 0) / 2
	line := emptyRowMarker + strings.Repeat(" ", max(padding-1, 0)) + message
	return runewidth.Truncate(line, max(width, 0), "")
}

func (e *Editor) refreshScreen() error {
	t := e.terminal
	t.HideCursor()
	t.ClearScreen()
	t.MoveCursorTo(terminal.Position{})
	if e.shouldQuit {
		t.ClearCurrentLine()
		t.WriteLine(goodbye)
	} else {
		e.drawRows(t.Size())
		t.MoveCursorTo(e.cursor)
	}
	t.ShowCursor()
	return t.Flush()
}

// drawRows leaves the last row of the viewport empty.
func (e *Editor) drawRows(size terminal.Size) {
	if size.Rows <= 0 {
		return
	}
	marker := runewidth.Truncate(emptyRowMarker, max(size.Cols, 0), "")
	for row := 0; row < size.Rows-1; row++ {
		e.terminal.ClearCurrentLine()
		if row == size.Rows/3 {
			e.terminal.WriteLine(WelcomeLine(size.Cols))
		} else {
			e.terminal.WriteLine(marker)
		}
	}
}
