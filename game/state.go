package game

import (
	"hash/fnv"
	"strings"

	"github.com/pkg/errors"
)

// State is an immutable snapshot of a game: the grid, the side to move, and whether each side passed on its
// most recent turn. It is a plain value, so copies are independent and states can be used as map keys.
// The zero State has no side to move and is not a position: build states with New or FromRows.
type State struct {
	grid   [Cells]Cell
	toMove Player
	passed [2]bool
}

type direction struct{ rank, file int }

var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// New returns the standard starting position with black to move.
func New() State {
	var s State
	s.grid[index(3, 3)] = Black
	s.grid[index(4, 4)] = Black
	s.grid[index(3, 4)] = White
	s.grid[index(4, 3)] = White
	s.toMove = PlayerBlack
	return s
}

// FromRows builds a state from eight rows of eight symbols: 'x' for black, 'o' for white, '.' for empty.
// Neither side is marked as having passed.
func FromRows(rows []string, toMove Player) (State, error) {
	var s State
	if toMove != PlayerBlack && toMove != PlayerWhite {
		return s, errors.Errorf("invalid player to move %v", toMove)
	}
	if len(rows) != Size {
		return s, errors.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	for rank, row := range rows {
		if len(row) != Size {
			return s, errors.Errorf("row %d: expected %d cells, got %d", rank, Size, len(row))
		}
		for file := 0; file < Size; file++ {
			cell, ok := cellFromSymbol(row[file])
			if !ok {
				return s, errors.Errorf("row %d: unknown symbol %q", rank, row[file])
			}
			s.grid[index(rank, file)] = cell
		}
	}
	s.toMove = toMove
	return s, nil
}

func (s State) ToMove() Player { return s.toMove }

// Passed reports whether p passed on its most recent turn.
func (s State) Passed(p Player) bool { return s.passed[p.index()] }

// At returns the cell content at (rank, file). Off-board coordinates read as empty.
func (s State) At(rank, file int) Cell {
	if !inBounds(rank, file) {
		return Empty
	}
	return s.grid[index(rank, file)]
}

// Count returns the number of cells holding c.
func (s State) Count(c Cell) int {
	n := 0
	for _, cell := range s.grid {
		if cell == c {
			n++
		}
	}
	return n
}

func (s State) Occupied() int { return Cells - s.Count(Empty) }

// run counts the opponent disks the mover would capture from (rank, file) walking in d.
// A run only counts when it is closed by one of the mover's own disks.
func (s *State) run(rank, file int, d direction) int {
	mover, opponent := Cell(s.toMove), Cell(s.toMove.Opponent())
	n := 0
	for r, f := rank+d.rank, file+d.file; inBounds(r, f); r, f = r+d.rank, f+d.file {
		switch s.grid[index(r, f)] {
		case opponent:
			n++
		case mover:
			return n
		default:
			return 0
		}
	}
	return 0
}

func (s *State) captures(rank, file int) bool {
	if s.grid[index(rank, file)] != Empty {
		return false
	}
	for _, d := range directions {
		if s.run(rank, file, d) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves lists every placement for the side to move in row-major order.
// When there is none the result is exactly [Pass].
func (s State) LegalMoves() []Move {
	var moves []Move
	for i := 0; i < Cells; i++ {
		rank, file := i/Size, i%Size
		if s.captures(rank, file) {
			moves = append(moves, NewMove(rank, file))
		}
	}
	if len(moves) == 0 {
		return []Move{Pass}
	}
	return moves
}

// Apply returns the state after the side to move plays move. The receiver is never modified.
//
// Pass always succeeds: it marks the mover as having passed and hands the turn over. A placement flips every
// bracketed run in all eight directions, clears the mover's pass flag and hands the turn over.
func (s State) Apply(move Move) (State, error) {
	next := s
	if move.IsPass() {
		next.passed[s.toMove.index()] = true
		next.toMove = s.toMove.Opponent()
		return next, nil
	}
	if !move.onBoard() {
		return s, &IllegalMoveError{Move: move, Player: s.toMove, Reason: "off the board"}
	}
	rank, file := move.Coords()
	if s.grid[index(rank, file)] != Empty {
		return s, &IllegalMoveError{Move: move, Player: s.toMove, Reason: "cell is occupied"}
	}

	mover := Cell(s.toMove)
	flipped := 0
	for _, d := range directions {
		n := s.run(rank, file, d)
		for i := 1; i <= n; i++ {
			next.grid[index(rank+i*d.rank, file+i*d.file)] = mover
		}
		flipped += n
	}
	if flipped == 0 {
		return s, &IllegalMoveError{Move: move, Player: s.toMove, Reason: "no disks captured"}
	}

	next.grid[index(rank, file)] = mover
	next.passed[s.toMove.index()] = false
	next.toMove = s.toMove.Opponent()
	return next, nil
}

// MustApply is Apply for moves already known to be legal, such as those returned by LegalMoves.
func (s State) MustApply(move Move) State {
	next, err := s.Apply(move)
	if err != nil {
		panic(err)
	}
	return next
}

// IsTerminal reports whether both sides passed in succession.
func (s State) IsTerminal() bool {
	return s.passed[0] && s.passed[1]
}

// Score is p's disk count minus every other occupied cell.
func (s State) Score(p Player) int {
	mine := Cell(p)
	score := 0
	for _, cell := range s.grid {
		switch {
		case cell == mine:
			score++
		case cell != Empty:
			score--
		}
	}
	return score
}

// Winner returns the side with the positive score. ok is false for a draw.
func (s State) Winner() (winner Player, ok bool) {
	switch score := s.Score(PlayerBlack); {
	case score > 0:
		return PlayerBlack, true
	case score < 0:
		return PlayerWhite, true
	}
	return 0, false
}

// Hash returns an FNV-1a hash of everything that distinguishes one state from another.
func (s State) Hash() StateHash {
	var buf [Cells + 3]byte
	for i, cell := range s.grid {
		buf[i] = byte(cell)
	}
	buf[Cells] = byte(s.toMove)
	if s.passed[0] {
		buf[Cells+1] = 1
	}
	if s.passed[1] {
		buf[Cells+2] = 1
	}
	h := fnv.New64a()
	h.Write(buf[:])
	return StateHash(h.Sum64())
}

// String renders the grid as eight '/'-separated rows in the symbols FromRows accepts.
func (s State) String() string {
	var sb strings.Builder
	for rank := 0; rank < Size; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		for file := 0; file < Size; file++ {
			sb.WriteByte(s.grid[index(rank, file)].symbol())
		}
	}
	return sb.String()
}

// Rows is the inverse of FromRows.
func (s State) Rows() []string {
	return strings.Split(s.String(), "/")
}
