package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hecto/terminal"
)

var sizes = []terminal.Size{
	{Rows: 1, Cols: 1},
	{Rows: 3, Cols: 7},
	{Rows: 24, Cols: 80},
}

func TestMoveSaturatesAtEdges(t *testing.T) {
	for _, size := range sizes {
		for y := 0; y < size.Rows; y++ {
			for x := 0; x < size.Cols; x++ {
				pos := terminal.Position{X: x, Y: y}

				up := Move(pos, MoveUp, size)
				require.Equal(t, max(y-1, 0), up.Y)
				require.Equal(t, x, up.X)

				down := Move(pos, MoveDown, size)
				require.Equal(t, min(y+1, size.Rows-1), down.Y)

				left := Move(pos, MoveLeft, size)
				require.Equal(t, max(x-1, 0), left.X)
				require.Equal(t, y, left.Y)

				right := Move(pos, MoveRight, size)
				require.Equal(t, min(x+1, size.Cols-1), right.X)

				require.GreaterOrEqual(t, up.Y, 0)
				require.GreaterOrEqual(t, left.X, 0)
				require.Less(t, down.Y, size.Rows)
				require.Less(t, right.X, size.Cols)
			}
		}
	}
}

func TestMoveJumpsAreIdempotent(t *testing.T) {
	size := terminal.Size{Rows: 24, Cols: 80}
	start := terminal.Position{X: 17, Y: 9}

	tests := []struct {
		m    Movement
		want terminal.Position
	}{
		{MovePageUp, terminal.Position{X: 17, Y: 0}},
		{MovePageDown, terminal.Position{X: 17, Y: 23}},
		{MoveHome, terminal.Position{X: 0, Y: 9}},
		{MoveEnd, terminal.Position{X: 79, Y: 9}},
	}
	for _, tt := range tests {
		once := Move(start, tt.m, size)
		require.Equal(t, tt.want, once)
		require.Equal(t, once, Move(once, tt.m, size))
	}
}

func TestMoveInEmptyViewport(t *testing.T) {
	size := terminal.Size{}
	origin := terminal.Position{}
	for m := MoveUp; m <= MoveEnd; m++ {
		require.Equal(t, origin, Move(origin, m, size))
	}
}

func TestMoveDownClampsAfterShrink(t *testing.T) {
	pos := terminal.Position{X: 70, Y: 20}
	small := terminal.Size{Rows: 10, Cols: 40}

	require.Equal(t, terminal.Position{X: 70, Y: 9}, Move(pos, MoveDown, small))
	require.Equal(t, terminal.Position{X: 39, Y: 20}, Move(pos, MoveRight, small))
}
