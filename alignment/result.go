package alignment

import (
	"fmt"

	"github.com/biogo/hts/sam"
)

// Result is a scored alignment path. RefBegin is the 0-based reference offset
// of the first aligned base; soft clipped query bases do not consume reference.
type Result struct {
	Score    int
	Cigar    sam.Cigar
	RefBegin int
}

func (r Result) String() string {
	return fmt.Sprintf("score: %d cigar: %v refBegin: %d", r.Score, r.Cigar, r.RefBegin)
}

// Stats counts the bases of each operation kind in an alignment path.
type Stats struct {
	Matches    int
	Mismatches int
	Inserted   int
	Deleted    int
	Clipped    int
}

func (r Result) Stats() Stats {
	var s Stats
	for _, co := range r.Cigar {
		switch co.Type() {
		case sam.CigarEqual:
			s.Matches += co.Len()
		case sam.CigarMismatch:
			s.Mismatches += co.Len()
		case sam.CigarInsertion:
			s.Inserted += co.Len()
		case sam.CigarDeletion:
			s.Deleted += co.Len()
		case sam.CigarSoftClipped:
			s.Clipped += co.Len()
		}
	}
	return s
}

// Identity is the fraction of aligned query bases that match the reference,
// or -1 when nothing is aligned.
func (s Stats) Identity() float64 {
	aligned := s.Matches + s.Mismatches + s.Inserted
	if aligned == 0 {
		return -1
	}
	return float64(s.Matches) / float64(aligned)
}

// Rescore recomputes the score of res from its path. A gap pays Open only when
// it follows a clip or an aligned base; switching directly between an insert
// and a delete costs Extend alone, as in the recurrence.
func Rescore(query, ref []byte, res Result, scores Scores) int {
	var score, queryPos int
	refPos := res.RefBegin
	inGap := false

	for _, co := range res.Cigar {
		n := co.Len()
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
			for i := 0; i < n; i++ {
				score += scores.symbol(query[queryPos+i], ref[refPos+i])
			}
			queryPos += n
			refPos += n
			inGap = false
		case sam.CigarInsertion, sam.CigarDeletion:
			if !inGap {
				score += scores.Open
			}
			score += n * scores.Extend
			if co.Type() == sam.CigarInsertion {
				queryPos += n
			} else {
				refPos += n
			}
			inGap = true
		case sam.CigarSoftClipped:
			score += n * scores.OffEdge
			queryPos += n
			inGap = false
		}
	}
	return score
}
