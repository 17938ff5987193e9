package game

import "github.com/pkg/errors"

// Cell is the content of a single board square.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "unknown"
}

func (c Cell) symbol() byte {
	switch c {
	case Black:
		return 'x'
	case White:
		return 'o'
	}
	return '.'
}

func cellFromSymbol(b byte) (Cell, bool) {
	switch b {
	case 'x', 'X':
		return Black, true
	case 'o', 'O':
		return White, true
	case '.', '-':
		return Empty, true
	}
	return Empty, false
}

// Player is one of the two sides. Black moves first.
type Player Cell

const (
	PlayerBlack = Player(Black)
	PlayerWhite = Player(White)
)

func (p Player) String() string { return Cell(p).String() }

// Opponent returns the other side. It panics for anything but black or white.
func (p Player) Opponent() Player {
	switch p {
	case PlayerBlack:
		return PlayerWhite
	case PlayerWhite:
		return PlayerBlack
	}
	panic(errors.Errorf("player %d has no opponent", p))
}

// index maps black to 0 and white to 1 for per-player arrays.
func (p Player) index() int {
	if p == PlayerWhite {
		return 1
	}
	return 0
}
