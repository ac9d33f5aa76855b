package alignment

import (
	"fmt"

	"github.com/biogo/hts/sam"
)

// backTrace is the best terminal cell seen so far.
type backTrace struct {
	max        int
	state      State
	queryBegin int
	refBegin   int
	isInit     bool
}

func (bt *backTrace) update(score, refIndex, queryIndex int) {
	if bt.isInit && score <= bt.max {
		return
	}
	bt.max = score
	bt.state = Match
	bt.queryBegin = queryIndex
	bt.refBegin = refIndex
	bt.isInit = true
}

// segment is the run being extended while the path is built backwards.
type segment struct {
	op sam.CigarOpType
	n  int
}

// extend starts a new run of op unless the open run already has that type.
func (ps *segment) extend(path []sam.CigarOp, op sam.CigarOpType) []sam.CigarOp {
	if ps.n > 0 && ps.op == op {
		ps.n++
		return path
	}
	if ps.n > 0 {
		path = append(path, sam.NewCigarOp(ps.op, ps.n))
	}
	ps.op, ps.n = op, 1
	return path
}

// backTraceAlignment replays the backpointers from the terminal cell in bt
// down to the first row or column of the matrix.
func backTraceAlignment(query, ref []byte, ptrMat *ptrMatrix, bt backTrace) Result {
	querySize, refSize := len(query), len(ref)
	if !bt.isInit {
		panic("alignment: backtrace started from an uninitialized terminal")
	}
	if bt.queryBegin > querySize || bt.refBegin > refSize {
		panic(fmt.Sprintf("alignment: backtrace terminal (%d,%d) outside %dx%d matrix",
			bt.queryBegin, bt.refBegin, querySize, refSize))
	}

	var path []sam.CigarOp
	var ps segment

	// query running off the end of the reference
	if bt.queryBegin < querySize {
		ps = segment{op: sam.CigarSoftClipped, n: querySize - bt.queryBegin}
	}

	for bt.queryBegin > 0 && bt.refBegin > 0 {
		next := ptrMat.at(bt.queryBegin, bt.refBegin).get(bt.state)

		switch bt.state {
		case Match:
			path = ps.extend(path, sam.CigarMatch)
			bt.queryBegin--
			bt.refBegin--
		case Delete, Jump:
			path = ps.extend(path, sam.CigarDeletion)
			bt.refBegin--
		case Insert, JumpIns:
			path = ps.extend(path, sam.CigarInsertion)
			bt.queryBegin--
		default:
			panic(fmt.Sprintf("alignment: unknown align state %v at (%d,%d)", bt.state, bt.queryBegin, bt.refBegin))
		}
		bt.state = next
	}

	if ps.n > 0 {
		path = append(path, sam.NewCigarOp(ps.op, ps.n))
	}

	// query running off the start of the reference
	if bt.queryBegin != 0 {
		path = append(path, sam.NewCigarOp(sam.CigarSoftClipped, bt.queryBegin))
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{
		Score:    bt.max,
		Cigar:    addSeqMatch(query, ref[bt.refBegin:], path),
		RefBegin: bt.refBegin,
	}
}
