// Package realign places reads against a reference window with the global
// aligner and records the result on the read.
package realign

import (
	"runtime"
	"sync"

	"github.com/biogo/hts/sam"

	"github.com/chungtseng/manta/alignment"
)

// ScoreTag holds the alignment score of a realigned read.
var ScoreTag = sam.NewTag("AS")

// Options controls a batch realignment.
type Options struct {
	Scores alignment.Scores

	// number of aligning goroutines, runtime.NumCPU() when <= 0
	Threads int

	// reads whose aligned bases match less than this fraction are rejected
	MinIdentity float64
}

// Record aligns the read sequence of rec to ref, which starts at refStart on
// its chromosome. Accepted reads get their position, CIGAR and AS tag
// rewritten; rejected reads are left untouched.
func Record(a *alignment.GlobalAligner, rec *sam.Record, ref []byte, refStart int, minIdentity float64) (alignment.Result, bool) {
	read := rec.Seq.Expand()
	if len(read) == 0 || len(ref) == 0 {
		return alignment.Result{}, false
	}

	result := a.Align(read, ref)
	if result.Stats().Identity() < minIdentity {
		return result, false
	}

	rec.Pos = refStart + result.RefBegin
	rec.Cigar = result.Cigar
	rec.Flags &^= sam.Unmapped
	setAux(rec, ScoreTag, result.Score)
	return result, true
}

// All realigns recs concurrently and returns the accepted records in input
// order. Each worker owns its aligner.
func All(recs []*sam.Record, ref []byte, refStart int, opts Options) []*sam.Record {
	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	accepted := make([]bool, len(recs))

	var wg sync.WaitGroup
	wg.Add(threads)
	channels := make([]chan int, threads)
	for threadIndex := 0; threadIndex < threads; threadIndex++ {
		channels[threadIndex] = make(chan int, 2000)
		go func(tIndex int) {
			defer wg.Done()
			aligner := alignment.NewGlobalAligner(opts.Scores)
			for readIndex := range channels[tIndex] {
				_, accepted[readIndex] = Record(aligner, recs[readIndex], ref, refStart, opts.MinIdentity)
			}
		}(threadIndex)
	}

	for readIndex := range recs {
		channels[readIndex%threads] <- readIndex
	}
	for i := 0; i < threads; i++ {
		close(channels[i])
	}
	wg.Wait()

	var alignments []*sam.Record
	for i, rec := range recs {
		if accepted[i] {
			alignments = append(alignments, rec)
		}
	}
	return alignments
}

func setAux(rec *sam.Record, tag sam.Tag, value interface{}) {
	aux, err := sam.NewAux(tag, value)
	if err != nil {
		panic(err)
	}
	fields := rec.AuxFields[:0]
	for _, f := range rec.AuxFields {
		if f.Tag() != tag {
			fields = append(fields, f)
		}
	}
	rec.AuxFields = append(fields, aux)
}
