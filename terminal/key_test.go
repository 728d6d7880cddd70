package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		mod  tcell.ModMask
		want KeyEvent
	}{
		{tcell.KeyUp, 0, tcell.ModNone, NavKey(NavUp)},
		{tcell.KeyDown, 0, tcell.ModNone, NavKey(NavDown)},
		{tcell.KeyLeft, 0, tcell.ModNone, NavKey(NavLeft)},
		{tcell.KeyRight, 0, tcell.ModNone, NavKey(NavRight)},
		{tcell.KeyPgUp, 0, tcell.ModNone, NavKey(NavPageUp)},
		{tcell.KeyPgDn, 0, tcell.ModNone, NavKey(NavPageDown)},
		{tcell.KeyHome, 0, tcell.ModNone, NavKey(NavHome)},
		{tcell.KeyEnd, 0, tcell.ModNone, NavKey(NavEnd)},
		{tcell.KeyRune, 'q', tcell.ModNone, Char('q')},
		{tcell.KeyRune, 'Q', tcell.ModNone, Char('Q')},
		{tcell.KeyRune, 'q', tcell.ModCtrl, Ctrl('q')},
		{tcell.KeyRune, 'q', tcell.ModAlt, Other()},
		{tcell.KeyRune, 'q', tcell.ModAlt | tcell.ModCtrl, Other()},
		{tcell.KeyCtrlQ, 0, tcell.ModCtrl, Ctrl('q')},
		{tcell.KeyCtrlA, 0, tcell.ModCtrl, Ctrl('a')},
		{tcell.KeyTab, 0, tcell.ModNone, Char('\t')},
		{tcell.KeyEnter, 0, tcell.ModNone, Char('\n')},
		{tcell.KeyBackspace2, 0, tcell.ModNone, Other()},
		{tcell.KeyEscape, 0, tcell.ModNone, Other()},
		{tcell.KeyF1, 0, tcell.ModNone, Other()},
	}
	for _, tt := range tests {
		got := decodeKey(tcell.NewEventKey(tt.key, tt.ch, tt.mod))
		require.Equal(t, tt.want, got, "key %v rune %q", tt.key, tt.ch)
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	keys := []KeyEvent{
		Char('a'), Char('Q'), Char('~'),
		Ctrl('q'), Ctrl('s'),
		NavKey(NavUp), NavKey(NavDown), NavKey(NavLeft), NavKey(NavRight),
		NavKey(NavPageUp), NavKey(NavPageDown), NavKey(NavHome), NavKey(NavEnd),
	}
	for _, k := range keys {
		parsed, err := ParseKey(k.String())
		require.NoError(t, err, k.String())
		require.Equal(t, k, parsed)
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("Ctrl+Q")
	require.NoError(t, err)
	require.Equal(t, Ctrl('q'), k)

	k, err = ParseKey(" PgDn ")
	require.NoError(t, err)
	require.Equal(t, NavKey(NavPageDown), k)

	for _, bad := range []string{"", "ctrl+", "ctrl+ab", "upup", "shift+x"} {
		_, err := ParseKey(bad)
		require.Error(t, err, bad)
	}
}
