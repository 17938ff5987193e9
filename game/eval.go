package game

// DiskDifferential scores a state as the perspective player's disks minus every other occupied cell.
func DiskDifferential(state State, perspective Player) int {
	return state.Score(perspective)
}

// Evaluate scores a state for the side to move.
func Evaluate(state State) int {
	return DiskDifferential(state, state.ToMove())
}
