package alignment

import "strconv"

// State is one of the cell states shared by the aligner recurrences and the backtrace walk.
type State uint8

const (
	Match State = iota
	Delete
	Insert
	// Jump and JumpIns are produced only by jump-aware aligners. The backtrace
	// walk treats them as Delete and Insert.
	Jump
	JumpIns
	stateCount
)

var stateLabels = [stateCount]string{"MATCH", "DELETE", "INSERT", "JUMP", "JUMPINS"}

func (s State) String() string {
	if s >= stateCount {
		return "UNKNOWN(" + strconv.Itoa(int(s)) + ")"
	}
	return stateLabels[s]
}
