// Package editor runs the screen editor's main loop: redraw, wait for a key,
// update the cursor, until the quit key is pressed.
package editor

import (
	"log"
	"sort"

	"hecto/commands"
	"hecto/config"
	"hecto/terminal"
)

// Terminal is the screen the editor draws on and reads keys from.
// *terminal.Session implements it.
type Terminal interface {
	Size() terminal.Size
	ReadKey() (terminal.KeyEvent, error)
	ClearScreen()
	ClearCurrentLine()
	MoveCursorTo(terminal.Position)
	HideCursor()
	ShowCursor()
	WriteLine(text string)
	Flush() error
}

// RuntimeError is a failure to draw or to read input inside the loop.
type RuntimeError struct {
	Op  string
	Err error
}

func (e *RuntimeError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *RuntimeError) Cause() error { return e.Err }

func (e *RuntimeError) Unwrap() error { return e.Err }

const quitCommand = "quit"

var defaultQuitKey = terminal.Ctrl('q')

type Editor struct {
	shouldQuit bool
	cursor     terminal.Position

	terminal Terminal
	config   *config.Config
	commands *commands.Commands
	keys     map[terminal.KeyEvent]string

	log *log.Logger
}

// New returns an editor with the cursor at the top left corner. Key
// bindings come from cfg.
func New(t Terminal, cfg *config.Config, log *log.Logger) *Editor {
	e := &Editor{
		terminal: t,
		config:   cfg,
		commands: commands.NewCommands(log),
		log:      log,
	}
	e.registerCommands()
	e.bindKeys(cfg.Keys())
	return e
}

func (e *Editor) registerCommands() {
	e.commands.Register(quitCommand, e.quit)
	moves := map[string]Movement{
		"cursor-up":    MoveUp,
		"cursor-down":  MoveDown,
		"cursor-left":  MoveLeft,
		"cursor-right": MoveRight,
		"page-up":      MovePageUp,
		"page-down":    MovePageDown,
		"line-start":   MoveHome,
		"line-end":     MoveEnd,
	}
	for name, m := range moves {
		e.commands.Register(name, func() { e.moveCursor(m) })
	}
}

// bindKeys replaces the key bindings. Entries naming an unknown key or
// command are logged and skipped. If no key is left that quits, ctrl+q is
// bound to quit.
func (e *Editor) bindKeys(bindings map[string]string) {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	keys := make(map[terminal.KeyEvent]string, len(bindings))
	for _, name := range names {
		key, err := terminal.ParseKey(name)
		if err != nil {
			e.log.Printf("ignoring binding %q: %v", name, err)
			continue
		}
		command, err := e.commands.Resolve(bindings[name])
		if err != nil {
			e.log.Printf("ignoring binding %q: %v", name, err)
			continue
		}
		keys[key] = command
	}

	// There is always a way out of raw mode.
	for _, command := range keys {
		if command == quitCommand {
			e.keys = keys
			return
		}
	}
	e.log.Printf("no key bound to %s, keeping %s", quitCommand, defaultQuitKey)
	keys[defaultQuitKey] = quitCommand
	e.keys = keys
}

// Run loops until the quit key is pressed, then draws the goodbye screen
// and returns nil. Any error reading a key or drawing ends the loop.
func (e *Editor) Run() error {
	for {
		if e.config.Changed() {
			e.bindKeys(e.config.Keys())
		}
		if err := e.refreshScreen(); err != nil {
			return &RuntimeError{Op: "refresh screen", Err: err}
		}
		if e.shouldQuit {
			return nil
		}
		if err := e.processKeypress(); err != nil {
			return &RuntimeError{Op: "process keypress", Err: err}
		}
	}
}

func (e *Editor) processKeypress() error {
	key, err := e.terminal.ReadKey()
	if err != nil {
		return err
	}
	e.handleKey(key)
	return nil
}

// handleKey runs the command bound to key. Unbound keys do nothing.
func (e *Editor) handleKey(key terminal.KeyEvent) {
	command, ok := e.keys[key]
	if !ok {
		return
	}
	if err := e.commands.Exec(command); err != nil {
		e.log.Printf("key %s: %v", key, err)
	}
}

func (e *Editor) quit() {
	if !e.shouldQuit {
		e.log.Print("quit requested")
	}
	e.shouldQuit = true
}

func (e *Editor) moveCursor(m Movement) {
	e.cursor = Move(e.cursor, m, e.terminal.Size())
}

func (e *Editor) Cursor() terminal.Position { return e.cursor }

func (e *Editor) ShouldQuit() bool { return e.shouldQuit }
