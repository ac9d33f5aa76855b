package alignment

const ptrBits = 3
const ptrMask = 1<<ptrBits - 1

// ptrCell packs the predecessor of every state at one cell, ptrBits per state.
type ptrCell uint16

func (c ptrCell) get(s State) State {
	return State(c>>(ptrBits*uint(s))) & ptrMask
}

func (c *ptrCell) set(s, from State) {
	shift := ptrBits * uint(s)
	*c = *c&^(ptrMask<<shift) | ptrCell(from)<<shift
}

// ptrMatrix is a (query+1)x(ref+1) backpointer arena laid out one reference
// position after another.
type ptrMatrix struct {
	rows  int // query positions per reference column
	cells []ptrCell
}

// resize keeps the existing allocation when it is large enough. Stale cells
// are never read: every cell the backtrace can reach is rewritten by align.
func (m *ptrMatrix) resize(querySize, refSize int) {
	m.rows = querySize + 1
	total := m.rows * (refSize + 1)
	if total <= cap(m.cells) {
		m.cells = m.cells[:total]
	} else {
		m.cells = make([]ptrCell, total)
	}
}

func (m *ptrMatrix) at(queryIndex, refIndex int) *ptrCell {
	return &m.cells[refIndex*m.rows+queryIndex]
}
