package config

import (
	"embed"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

//go:embed config.toml
var config embed.FS
var confName string = "config.toml"

type EditorConfig struct {
	LogFile string            `toml:"log_file"`
	Keys    map[string]string `toml:"keys"`
}

// Config holds the editor settings. The file is optional: without it the
// embedded defaults apply and nothing is written to disk.
type Config struct {
	path    string
	log     *log.Logger
	watcher *fsnotify.Watcher
	dirty   atomic.Bool

	EditorConfig *EditorConfig
}

// DefaultPath is config.toml inside the user's configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate config directory")
	}
	return filepath.Join(dir, "hecto", confName), nil
}

// NewConfig returns a config read from path. An empty path means defaults only.
func NewConfig(path string) *Config {
	return &Config{path: path, log: log.New(io.Discard, "", 0)}
}

func (cfg *Config) Init() error {
	ec, err := readConfig(cfg.path)
	if err != nil {
		return err
	}
	cfg.EditorConfig = ec
	return nil
}

func (cfg *Config) Path() string { return cfg.path }

// Keys returns a copy of the key bindings, key name to command name.
func (cfg *Config) Keys() map[string]string {
	keys := make(map[string]string, len(cfg.EditorConfig.Keys))
	for k, v := range cfg.EditorConfig.Keys {
		keys[k] = v
	}
	return keys
}

// Watch reloads the file when it changes. notify runs on the watcher's
// goroutine after a change is seen; the new settings are only read by the
// next call to Changed.
func (cfg *Config) Watch(log *log.Logger, notify func()) error {
	cfg.log = log
	if cfg.path == "" {
		return nil
	}
	dir := filepath.Dir(cfg.path)
	if _, err := os.Stat(dir); err != nil {
		log.Printf("not watching config: %v", err)
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create config watcher")
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return errors.Wrapf(err, "watch %s", dir)
	}
	cfg.watcher = watcher
	go cfg.rereadConfigOnFileChange(watcher, notify)
	return nil
}

func (cfg *Config) rereadConfigOnFileChange(watcher *fsnotify.Watcher, notify func()) {
	target := filepath.Clean(cfg.path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				cfg.dirty.Store(true)
				if notify != nil {
					notify()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			cfg.log.Printf("config watcher: %v", err)
		}
	}
}

// Changed re-reads the file if the watcher saw it change since the last
// call. It reports whether new settings are in effect; a file that no longer
// parses leaves the previous settings in place.
func (cfg *Config) Changed() bool {
	if !cfg.dirty.Swap(false) {
		return false
	}
	ec, err := readConfig(cfg.path)
	if err != nil {
		cfg.log.Printf("config reload failed, keeping previous settings: %+v", err)
		return false
	}
	cfg.EditorConfig = ec
	cfg.log.Printf("config reloaded from %s", cfg.path)
	return true
}

func (cfg *Config) Cleanup() {
	if cfg.watcher != nil {
		cfg.watcher.Close()
	}
}

func readConfig(path string) (*EditorConfig, error) {
	ec, err := defaultConfig()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return ec, nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ec, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var file EditorConfig
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	ec.merge(&file)
	return ec, nil
}

func defaultConfig() (*EditorConfig, error) {
	content, err := fs.ReadFile(config, confName)
	if err != nil {
		return nil, errors.Wrap(err, "read embedded config")
	}
	var ec EditorConfig
	if err := toml.Unmarshal(content, &ec); err != nil {
		return nil, errors.Wrap(err, "parse embedded config")
	}
	if ec.Keys == nil {
		ec.Keys = make(map[string]string)
	}
	return &ec, nil
}

// merge lays other over ec. An empty command unbinds the key.
func (ec *EditorConfig) merge(other *EditorConfig) {
	if other.LogFile != "" {
		ec.LogFile = other.LogFile
	}
	for key, command := range other.Keys {
		if command == "" {
			delete(ec.Keys, key)
			continue
		}
		ec.Keys[key] = command
	}
}
