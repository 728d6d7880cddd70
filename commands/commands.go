// Package commands maps command names to the actions that implement them.
// Key bindings refer to actions by name, so a binding never holds a
// function value and can be reloaded from configuration.
package commands

import (
	"log"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrAmbiguousCommand = errors.New("ambiguous command")
)

type cmd func()
type Commands struct {
	log      *log.Logger
	commands map[string]cmd
}

func NewCommands(log *log.Logger) *Commands {
	return &Commands{log: log, commands: make(map[string]cmd)}
}

// Exec runs the command called name. A name that is a prefix of exactly one
// registered command runs that command, so "q" runs "quit".
func (c *Commands) Exec(command string) error {
	cmd, err := c.resolve(command)
	if err != nil {
		c.log.Printf("command %q: %v", command, err)
		return err
	}
	cmd()
	return nil
}

// Resolve returns the full name Exec would run for command.
func (c *Commands) Resolve(command string) (string, error) {
	if _, ok := c.commands[command]; ok {
		return command, nil
	}
	matches := c.findCommandsByPrefix(command)
	switch len(matches) {
	case 0:
		return "", errors.Wrap(ErrUnknownCommand, command)
	case 1:
		return matches[0], nil
	default:
		return "", errors.Wrapf(ErrAmbiguousCommand, "%s matches %s", command, strings.Join(matches, ", "))
	}
}

func (c *Commands) resolve(command string) (cmd, error) {
	name, err := c.Resolve(command)
	if err != nil {
		return nil, err
	}
	return c.commands[name], nil
}

func (c *Commands) findCommandsByPrefix(commandPrefix string) []string {
	if commandPrefix == "" {
		return nil
	}
	var names []string
	for name := range c.commands {
		if strings.HasPrefix(name, commandPrefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (c *Commands) Register(name string, command cmd) {
	c.commands[name] = command
}

// Names lists the registered commands in sorted order.
func (c *Commands) Names() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
