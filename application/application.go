// Package application wires the terminal session, configuration and editor
// together and owns them for the life of the process.
package application

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/pkg/errors"

	"hecto/config"
	"hecto/editor"
	"hecto/terminal"
)

// Session is the raw-mode terminal the application drives.
type Session interface {
	editor.Terminal
	Interrupt()
	Close()
}

type Application struct {
	config *config.Config
	log    *log.Logger
}

func New(cfg *config.Config, log *log.Logger) *Application {
	return &Application{config: cfg, log: log}
}

// Run takes over the controlling terminal and runs the editor until it quits.
// The terminal is back in its original mode when Run returns.
func (app *Application) Run() error {
	session, err := terminal.NewSession(app.log)
	if err != nil {
		return err
	}
	return app.RunSession(session)
}

// RunSession runs the editor on session and closes it on every way out,
// including a panic inside the loop, which is returned as an error.
func (app *Application) RunSession(session Session) (err error) {
	defer func() {
		maybePanic := recover()
		var stack []byte
		if maybePanic != nil {
			stack = debug.Stack()
		}
		session.Close()
		if maybePanic != nil {
			err = errors.Errorf("panic: %v\n%s", maybePanic, stack)
		}
		if err != nil {
			app.log.Printf("editor stopped: %+v", err)
		}
	}()

	if err := app.config.Watch(app.log, session.Interrupt); err != nil {
		app.log.Printf("config reload disabled: %v", err)
	}
	defer app.config.Cleanup()

	return editor.New(session, app.config, app.log).Run()
}

// NewLogger opens the debug log. Without a path everything logged is dropped,
// since the screen belongs to the editor.
func NewLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	return log.New(file, fmt.Sprintf("hecto[%d] ", os.Getpid()), log.LstdFlags|log.Lshortfile), file, nil
}
