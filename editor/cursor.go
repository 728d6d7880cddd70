package editor

import "hecto/terminal"

type Movement int

const (
	MoveUp Movement = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveHome
	MoveEnd
)

// Move returns pos after applying m inside a viewport of the given size.
// The result never goes below zero or past the last row and column.
func Move(pos terminal.Position, m Movement, size terminal.Size) terminal.Position {
	maxY := max(size.Rows-1, 0)
	maxX := max(size.Cols-1, 0)

	switch m {
	case MoveUp:
		pos.Y = max(pos.Y-1, 0)
	case MoveDown:
		pos.Y = min(pos.Y+1, maxY)
	case MoveLeft:
		pos.X = max(pos.X-1, 0)
	case MoveRight:
		pos.X = min(pos.X+1, maxX)
	case MovePageUp:
		pos.Y = 0
	case MovePageDown:
		pos.Y = maxY
	case MoveHome:
		pos.X = 0
	case MoveEnd:
		pos.X = maxX
	}
	return pos
}
