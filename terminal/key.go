package terminal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Kind tells which variant a KeyEvent holds.
type Kind int

const (
	KindOther Kind = iota
	KindChar
	KindCtrl
	KindNav
)

// Nav names a navigation key.
type Nav int

const (
	NavNone Nav = iota
	NavUp
	NavDown
	NavLeft
	NavRight
	NavPageUp
	NavPageDown
	NavHome
	NavEnd
)

var navNames = map[Nav]string{
	NavUp:       "up",
	NavDown:     "down",
	NavLeft:     "left",
	NavRight:    "right",
	NavPageUp:   "pgup",
	NavPageDown: "pgdn",
	NavHome:     "home",
	NavEnd:      "end",
}

// KeyEvent is one decoded keypress. Rune is set for KindChar and KindCtrl
// (lower case letter for control combinations), Nav for KindNav.
// KeyEvent is comparable and can be used as a map key.
type KeyEvent struct {
	Kind Kind
	Rune rune
	Nav  Nav
}

func Char(r rune) KeyEvent { return KeyEvent{Kind: KindChar, Rune: r} }

func Ctrl(r rune) KeyEvent { return KeyEvent{Kind: KindCtrl, Rune: unicode.ToLower(r)} }

func NavKey(n Nav) KeyEvent { return KeyEvent{Kind: KindNav, Nav: n} }

func Other() KeyEvent { return KeyEvent{Kind: KindOther} }

func (k KeyEvent) String() string {
	switch k.Kind {
	case KindChar:
		return string(k.Rune)
	case KindCtrl:
		return "ctrl+" + string(k.Rune)
	case KindNav:
		if name, ok := navNames[k.Nav]; ok {
			return name
		}
	}
	return "other"
}

// ParseKey is the inverse of KeyEvent.String for the keys a binding can name:
// a single character, "ctrl+<char>" or a navigation key name.
func ParseKey(s string) (KeyEvent, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		if utf8.RuneCountInString(rest) == 1 {
			r, _ := utf8.DecodeRuneInString(rest)
			return Ctrl(r), nil
		}
		return KeyEvent{}, errors.Errorf("invalid control key %q", s)
	}
	for nav, navName := range navNames {
		if name == navName {
			return NavKey(nav), nil
		}
	}
	// Single characters keep their case: "Q" and "q" are different keys.
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Char(r), nil
	}
	return KeyEvent{}, errors.Errorf("unknown key %q", s)
}

func decodeKey(ev *tcell.EventKey) KeyEvent {
	switch ev.Key() {
	case tcell.KeyUp:
		return NavKey(NavUp)
	case tcell.KeyDown:
		return NavKey(NavDown)
	case tcell.KeyLeft:
		return NavKey(NavLeft)
	case tcell.KeyRight:
		return NavKey(NavRight)
	case tcell.KeyPgUp:
		return NavKey(NavPageUp)
	case tcell.KeyPgDn:
		return NavKey(NavPageDown)
	case tcell.KeyHome:
		return NavKey(NavHome)
	case tcell.KeyEnd:
		return NavKey(NavEnd)
	case tcell.KeyTab:
		return Char('\t')
	case tcell.KeyEnter:
		return Char('\n')
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return Other()
		}
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return Ctrl(ev.Rune())
		}
		return Char(ev.Rune())
	}
	// Backspace arrives as ^H.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && k != tcell.KeyBackspace {
		return Ctrl(rune('a' + k - tcell.KeyCtrlA))
	}
	return Other()
}

// GoString prints the key by name.
func (k KeyEvent) GoString() string { return fmt.Sprintf("KeyEvent(%s)", k) }
