package alignment

import (
	"testing"

	"github.com/biogo/hts/sam"
)

func cigar(ops ...sam.CigarOp) sam.Cigar { return sam.Cigar(ops) }

func TestRescore(t *testing.T) {
	op := sam.NewCigarOp
	tests := []struct {
		name  string
		query string
		ref   string
		res   Result
		want  int
	}{
		{
			name:  "match and mismatch",
			query: "ACGT",
			ref:   "AGGT",
			res:   Result{Cigar: cigar(op(sam.CigarEqual, 1), op(sam.CigarMismatch, 1), op(sam.CigarEqual, 2))},
			want:  3*5 - 4,
		},
		{
			name:  "unsplit match run",
			query: "ACGT",
			ref:   "AGGT",
			res:   Result{Cigar: cigar(op(sam.CigarMatch, 4))},
			want:  3*5 - 4,
		},
		{
			name:  "insert then delete opens once",
			query: "ACT",
			ref:   "AGT",
			res:   Result{Cigar: cigar(op(sam.CigarEqual, 1), op(sam.CigarInsertion, 1), op(sam.CigarDeletion, 1), op(sam.CigarEqual, 1))},
			want:  2*5 - 6 - 1 - 1,
		},
		{
			name:  "clipped ends and offset",
			query: "TTACA",
			ref:   "GGACG",
			res:   Result{Cigar: cigar(op(sam.CigarSoftClipped, 2), op(sam.CigarEqual, 2), op(sam.CigarSoftClipped, 1)), RefBegin: 2},
			want:  2*5 - 3*2,
		},
		{
			name:  "delete after clip opens",
			query: "TAC",
			ref:   "GAC",
			res:   Result{Cigar: cigar(op(sam.CigarSoftClipped, 1), op(sam.CigarDeletion, 1), op(sam.CigarEqual, 2))},
			want:  -2 - 6 - 1 + 2*5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rescore([]byte(tt.query), []byte(tt.ref), tt.res, DefaultScores); got != tt.want {
				t.Errorf("Rescore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResult_Stats(t *testing.T) {
	res := NewGlobalAligner(DefaultScores).Align([]byte("GGACGGTAA"), []byte("ACGTCGT"))
	stats := res.Stats()

	if total := stats.Matches + stats.Mismatches + stats.Inserted + stats.Clipped; total != 9 {
		t.Errorf("stats %+v cover %d query bases, want 9", stats, total)
	}
	if stats.Clipped == 0 {
		t.Errorf("expected clipping for %v", res.Cigar)
	}

	none := Result{Cigar: cigar(sam.NewCigarOp(sam.CigarSoftClipped, 4))}.Stats()
	if none.Identity() != -1 {
		t.Errorf("Identity() of a clipped read = %v, want -1", none.Identity())
	}

	half := Stats{Matches: 3, Mismatches: 1, Inserted: 2, Deleted: 5, Clipped: 7}
	if half.Identity() != 0.5 {
		t.Errorf("Identity() = %v, want 0.5", half.Identity())
	}
}

func TestResult_String(t *testing.T) {
	res := Result{Score: 11, Cigar: cigar(sam.NewCigarOp(sam.CigarEqual, 1), sam.NewCigarOp(sam.CigarMismatch, 1)), RefBegin: 3}
	if got, want := res.String(), "score: 11 cigar: 1=1X refBegin: 3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
