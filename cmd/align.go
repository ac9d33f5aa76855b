package cmd

import (
	"bytes"
	"fmt"
	"log"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/hts/sam"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chungtseng/manta/alignment"
	"github.com/chungtseng/manta/config"
	"github.com/chungtseng/manta/realign"
)

var refSeq string
var refStart int

// alignCmd aligns query sequences to a single reference window
var alignCmd = &cobra.Command{
	Use:   "align [query]...",
	Short: "Globally align query sequences against a reference window",
	Long: `
Align each query end to end against the reference window. Query bases that
overhang either end of the window are soft clipped. One line is printed per
accepted query: name, reference position, CIGAR and alignment score.`,
	Example: "  svalign align --ref TTACGTAGG --ref-start 1000 ACGTAG ACGAAG",
	Args:    cobra.MinimumNArgs(1),
	RunE:    alignExec,
}

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringVarP(&refSeq, "ref", "r", "", "reference window sequence")
	alignCmd.Flags().IntVar(&refStart, "ref-start", 0, "0-based position of the window on its chromosome")
	alignCmd.Flags().IntP("threads", "t", 0, "number of threads to use (0 = auto)")
	alignCmd.Flags().Float64("min-identity", 0, "minimum fraction of aligned query bases matching the reference")
	alignCmd.Flags().Int("match", alignment.DefaultScores.Match, "score for equal bases")
	alignCmd.Flags().Int("mismatch", alignment.DefaultScores.Mismatch, "score for unequal bases")
	alignCmd.Flags().Int("gap-open", alignment.DefaultScores.Open, "score charged once per gap")
	alignCmd.Flags().Int("gap-extend", alignment.DefaultScores.Extend, "score charged per gap base")
	alignCmd.Flags().Int("off-edge", alignment.DefaultScores.OffEdge, "score per query base overhanging the reference")

	alignCmd.MarkFlagRequired("ref")

	// Bind the parameters to viper
	viper.BindPFlag("threads", alignCmd.Flags().Lookup("threads"))
	viper.BindPFlag("min-identity", alignCmd.Flags().Lookup("min-identity"))
	viper.BindPFlag("scores.match", alignCmd.Flags().Lookup("match"))
	viper.BindPFlag("scores.mismatch", alignCmd.Flags().Lookup("mismatch"))
	viper.BindPFlag("scores.gapOpen", alignCmd.Flags().Lookup("gap-open"))
	viper.BindPFlag("scores.gapExtend", alignCmd.Flags().Lookup("gap-extend"))
	viper.BindPFlag("scores.offEdgePenalty", alignCmd.Flags().Lookup("off-edge"))
}

func alignExec(cmd *cobra.Command, args []string) error {
	c := config.NewConfig()

	ref, err := parseSequence(refSeq)
	if err != nil {
		return fmt.Errorf("reference: %v", err)
	}
	if refStart < 0 {
		return fmt.Errorf("negative --ref-start %d", refStart)
	}

	recs := make([]*sam.Record, len(args))
	for i, arg := range args {
		seq, err := parseSequence(arg)
		if err != nil {
			return fmt.Errorf("query %d: %v", i+1, err)
		}
		recs[i] = &sam.Record{Name: fmt.Sprintf("query%d", i+1), Seq: sam.NewSeq(seq), Flags: sam.Unmapped}
	}

	alignments := realign.All(recs, ref, refStart, realign.Options{
		Scores:      c.AlignmentScores(),
		Threads:     c.Threads,
		MinIdentity: c.MinIdentity,
	})

	out := cmd.OutOrStdout()
	for _, rec := range alignments {
		fmt.Fprintf(out, "%s\t%d\t%v\t%v\n", rec.Name, rec.Pos, rec.Cigar, rec.AuxFields.Get(realign.ScoreTag).Value())
	}
	log.Printf("%d out of %d queries are aligned", len(alignments), len(recs))
	return nil
}

// parseSequence upper-cases seq and rejects anything that is not a DNA base
// or IUPAC ambiguity code.
func parseSequence(seq string) ([]byte, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("empty sequence")
	}
	b := bytes.ToUpper([]byte(seq))
	for i, c := range b {
		l := alphabet.Letter(c)
		if l == alphabet.DNAredundant.Gap() || !alphabet.DNAredundant.IsValid(l) {
			return nil, fmt.Errorf("invalid base %q at position %d", c, i+1)
		}
	}
	return b, nil
}
