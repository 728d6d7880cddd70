// Package terminal owns the raw-mode terminal for the lifetime of the editor.
//
// A Session wraps a tcell screen and presents it as a line printer with a
// movable cursor: the editor clears the screen, writes rows top to bottom,
// then places the visible cursor and flushes.
package terminal

import (
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

var DefaultStyle = tcell.StyleDefault

// FallbackSize is reported when the driver cannot tell the window size.
var FallbackSize = Size{Rows: 24, Cols: 80}

// Size is the viewport in character cells.
type Size struct {
	Rows, Cols int
}

// Position is a zero based cell coordinate, X is the column.
type Position struct {
	X, Y int
}

type Session struct {
	screen tcell.Screen
	log    *log.Logger

	// pos is where the next WriteLine starts and where ShowCursor puts the
	// visible cursor, like the cursor of a real terminal.
	pos Position

	closeOnce sync.Once
	closed    atomic.Bool
}

// NewSession puts the controlling terminal into raw mode.
func NewSession(log *log.Logger) (*Session, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, &InitError{cause: errors.New("not attached to an interactive terminal")}
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &InitError{cause: errors.WithStack(err)}
	}
	return NewSessionWithScreen(s, log)
}

// NewSessionWithScreen starts a session on an already created screen.
func NewSessionWithScreen(screen tcell.Screen, log *log.Logger) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, &InitError{cause: errors.WithStack(err)}
	}
	screen.SetStyle(DefaultStyle)
	screen.Clear()

	w, h := screen.Size()
	log.Printf("terminal session started (%dx%d)", w, h)
	return &Session{screen: screen, log: log}, nil
}

// Size queries the screen on every call so a resize shows up immediately.
func (s *Session) Size() Size {
	w, h := s.screen.Size()
	if w <= 0 && h <= 0 {
		return FallbackSize
	}
	return Size{Rows: max(h, 0), Cols: max(w, 0)}
}

// ReadKey blocks until a key is pressed. Resizes and interrupts wake it up
// too and come back as an Other event, so the caller redraws.
func (s *Session) ReadKey() (KeyEvent, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return KeyEvent{}, &ReadError{cause: ErrClosed}
		case *tcell.EventError:
			return KeyEvent{}, &ReadError{cause: errors.WithStack(ev)}
		case *tcell.EventKey:
			return decodeKey(ev), nil
		case *tcell.EventResize:
			s.screen.Sync()
			return Other(), nil
		case *tcell.EventInterrupt:
			return Other(), nil
		}
	}
}

// Interrupt wakes up a pending ReadKey. Safe to call from any goroutine.
func (s *Session) Interrupt() {
	if s.closed.Load() {
		return
	}
	if err := s.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		s.log.Printf("interrupt dropped: %v", err)
	}
}

func (s *Session) ClearScreen() {
	s.screen.Clear()
}

func (s *Session) ClearCurrentLine() {
	w, _ := s.screen.Size()
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, s.pos.Y, ' ', nil, DefaultStyle)
	}
}

func (s *Session) MoveCursorTo(p Position) {
	s.pos = p
}

func (s *Session) HideCursor() {
	s.screen.HideCursor()
}

func (s *Session) ShowCursor() {
	s.screen.ShowCursor(s.pos.X, s.pos.Y)
}

// WriteLine prints text at the write position and moves it to the start of
// the next row. Text past the right edge is dropped.
func (s *Session) WriteLine(text string) {
	w, _ := s.screen.Size()
	x := s.pos.X
	for _, r := range strings.ReplaceAll(text, "\t", " ") {
		rw := runewidth.RuneWidth(r)
		if x+rw > w {
			break
		}
		s.screen.SetContent(x, s.pos.Y, r, nil, DefaultStyle)
		x += max(rw, 1)
	}
	s.pos = Position{X: 0, Y: s.pos.Y + 1}
}

func (s *Session) Flush() error {
	if s.closed.Load() {
		return errors.WithStack(ErrClosed)
	}
	s.screen.Show()
	return nil
}

// Close restores the terminal to the mode it was in before the session
// started. It may be called any number of times.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.screen.Fini()
		s.log.Print("terminal session closed")
	})
}
