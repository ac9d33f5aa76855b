package alignment

import "github.com/biogo/hts/sam"

// addSeqMatch replaces every CigarMatch run with its CigarEqual and
// CigarMismatch sub-runs. ref starts at the first aligned reference base.
func addSeqMatch(query, ref []byte, path []sam.CigarOp) sam.Cigar {
	out := make(sam.Cigar, 0, len(path))
	var queryPos, refPos int

	for _, co := range path {
		n := co.Len()
		if co.Type() != sam.CigarMatch {
			con := co.Type().Consumes()
			queryPos += n * con.Query
			refPos += n * con.Reference
			out = append(out, co)
			continue
		}

		var ps segment
		for i := 0; i < n; i++ {
			op := sam.CigarMismatch
			if query[queryPos+i] == ref[refPos+i] {
				op = sam.CigarEqual
			}
			out = ps.extend(out, op)
		}
		out = append(out, sam.NewCigarOp(ps.op, ps.n))
		queryPos += n
		refPos += n
	}
	return out
}
