package game

import "fmt"

// Move is a placement at a board coordinate, or Pass.
type Move struct {
	Rank, File int8
}

// Pass is the only legal move when no placement is available.
var Pass = Move{Rank: -1, File: -1}

func NewMove(rank, file int) Move {
	return Move{Rank: int8(rank), File: int8(file)}
}

// MoveAt converts a row-major cell index into a move.
func MoveAt(index int) Move {
	return NewMove(index/Size, index%Size)
}

func (m Move) IsPass() bool { return m == Pass }

func (m Move) Coords() (rank, file int) { return int(m.Rank), int(m.File) }

// Index is the row-major cell index of the move, or -1 for Pass.
func (m Move) Index() int {
	if m.IsPass() {
		return -1
	}
	return int(m.Rank)*Size + int(m.File)
}

func (m Move) onBoard() bool {
	return inBounds(int(m.Rank), int(m.File))
}

// String renders the move as a row letter followed by a column number, so (0,0) is A1.
func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	if !m.onBoard() {
		return fmt.Sprintf("(%d,%d)", m.Rank, m.File)
	}
	return fmt.Sprintf("%c%d", 'A'+m.Rank, m.File+1)
}

func inBounds(rank, file int) bool {
	return rank >= 0 && rank < Size && file >= 0 && file < Size
}

func index(rank, file int) int { return rank*Size + file }
