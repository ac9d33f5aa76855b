// Package alignment implements the affine gap global aligner used to place
// reads against reference windows.
package alignment

import "math"

// badVal marks a gap state that an alignment may not occupy. It is added to
// scores, so it stays far enough from the int limits to absorb a few sums.
const badVal = math.MinInt32 / 2

// scoreVal is the best score of an alignment ending at one cell in each state.
type scoreVal [Insert + 1]int

// GlobalAligner aligns a query end to end against a reference. The query may
// fall off either end of the reference, in which case the overhang is soft
// clipped and scored at OffEdge per base. Leading and trailing reference is
// not penalised.
//
// A GlobalAligner reuses its buffers between calls and must not be shared
// between goroutines.
type GlobalAligner struct {
	scores Scores

	score1, score2 []scoreVal
	ptrMat         ptrMatrix
}

func NewGlobalAligner(scores Scores) *GlobalAligner {
	return &GlobalAligner{scores: scores}
}

func (a *GlobalAligner) Scores() Scores {
	return a.scores
}

// Align returns the best scoring alignment of query to ref. It panics if
// either sequence is empty.
func (a *GlobalAligner) Align(query, ref []byte) Result {
	querySize := len(query)
	refSize := len(ref)
	if querySize == 0 {
		panic("alignment: empty query sequence")
	}
	if refSize == 0 {
		panic("alignment: empty reference sequence")
	}

	scores := a.scores
	a.score1 = resizeScores(a.score1, querySize+1)
	a.score2 = resizeScores(a.score2, querySize+1)
	a.ptrMat.resize(querySize, refSize)

	thisSV, prevSV := a.score1, a.score2

	// no reference consumed yet: every query base so far hangs off the front
	for queryIndex := range thisSV {
		thisSV[queryIndex] = scoreVal{Match: queryIndex * scores.OffEdge, Delete: badVal, Insert: badVal}
	}

	var btrace backTrace

	for refIndex := 1; refIndex <= refSize; refIndex++ {
		thisSV, prevSV = prevSV, thisSV
		refSym := ref[refIndex-1]

		// the alignment may start at any reference position, but never in a gap
		thisSV[0] = scoreVal{Match: 0, Delete: badVal, Insert: badVal}

		for queryIndex := 1; queryIndex <= querySize; queryIndex++ {
			head := &thisSV[queryIndex]
			var ptr ptrCell
			var from State

			sval := &prevSV[queryIndex-1]
			head[Match], from = max3(sval[Match], sval[Delete], sval[Insert])
			head[Match] += scores.symbol(query[queryIndex-1], refSym)
			ptr.set(Match, from)

			sval = &prevSV[queryIndex]
			head[Delete], from = max3(sval[Match]+scores.Open, sval[Delete], sval[Insert])
			head[Delete] += scores.Extend
			ptr.set(Delete, from)

			sval = &thisSV[queryIndex-1]
			head[Insert], from = max3(sval[Match]+scores.Open, sval[Delete], sval[Insert])
			head[Insert] += scores.Extend
			ptr.set(Insert, from)

			// no gap next to the first query base
			if queryIndex == 1 {
				head[Delete] += badVal
				head[Insert] += badVal
			}

			*a.ptrMat.at(queryIndex, refIndex) = ptr
		}

		btrace.update(thisSV[querySize][Match], refIndex, querySize)
	}

	// the query may also run off the end of the reference
	for queryIndex, sval := range thisSV {
		btrace.update(sval[Match]+(querySize-queryIndex)*scores.OffEdge, refSize, queryIndex)
	}

	return backTraceAlignment(query, ref, &a.ptrMat, btrace)
}

// max3 returns the largest value and the state it came from. Ties keep the
// earlier state, so Match wins over Delete and Delete over Insert.
func max3(v0, v1, v2 int) (int, State) {
	best, from := v0, Match
	if v1 > best {
		best, from = v1, Delete
	}
	if v2 > best {
		best, from = v2, Insert
	}
	return best, from
}

func resizeScores(v []scoreVal, size int) []scoreVal {
	if size <= cap(v) {
		return v[:size]
	}
	return make([]scoreVal, size)
}
