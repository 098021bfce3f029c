// Package expand grows gene intervals outward before enrichment is computed,
// either by a fixed distance or up to the midpoint between neighboring genes.
package expand

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/goenrich/interval"
)

// Opts controls how an Expander changes gene intervals.
type Opts struct {
	// Distance is the number of bases added on each side of every gene.  Zero
	// disables expansion.
	Distance interval.PosType
	// NeighborBounded stops expansion at the midpoint between adjacent genes on
	// the same chromosome.
	NeighborBounded bool
	// GuessTxStart collapses every gene to its transcription start site before
	// expansion.
	GuessTxStart bool
}

// DefaultOpts sets the default options.
var DefaultOpts = Opts{
	Distance: 1000000,
}

// Expander applies Opts to gene lists.
type Expander struct {
	opts Opts
}

// New creates an Expander.  It returns a Precondition error if opts.Distance
// is negative.
func New(opts Opts) (*Expander, error) {
	if opts.Distance < 0 {
		return nil, errors.E(errors.Precondition, fmt.Sprintf("expand.New: negative expansion distance %d", opts.Distance))
	}
	return &Expander{opts: opts}, nil
}

// Opts returns the options the Expander was created with.
func (e *Expander) Opts() Opts { return e.opts }

// CollapseToTxStart applies GuessTxStart to genes if it is enabled.  Genes need
// not be sorted.
func (e *Expander) CollapseToTxStart(genes []interval.Record) error {
	if !e.opts.GuessTxStart {
		return nil
	}
	return GuessTxStart(genes)
}

// Apply expands genes in place.  Genes must be sorted by (Chrom, Start).
func (e *Expander) Apply(genes []interval.Record) error {
	if e.opts.Distance == 0 {
		return nil
	}
	if e.opts.NeighborBounded {
		log.Debug.Printf("expanding %d genes by up to %d bases, bounded by neighbors", len(genes), e.opts.Distance)
		return ExpandToNeighbor(genes, e.opts.Distance)
	}
	log.Debug.Printf("expanding %d genes by %d bases", len(genes), e.opts.Distance)
	ExpandByDistance(genes, e.opts.Distance)
	return nil
}

// ExpandByDistance moves every start d bases left, stopping at 0, and every
// end d bases right.  Expanded records may overlap.
func ExpandByDistance(records []interval.Record, d interval.PosType) {
	for i := range records {
		r := &records[i]
		r.Start = clampStart(r.Start - d)
		r.End += d
	}
}

// ExpandToNeighbor expands records by up to d bases on each side without
// letting the expansions of two records on the same chromosome cross.  When
// the gap between neighbors is smaller than 2*d, both are extended to the
// midpoint of the gap.  A record nested inside the previous one is left
// alone, and the previous record keeps bounding the next.  The last record
// on each chromosome always receives its full trailing expansion.
//
// Records must be sorted by (Chrom, Start).
func ExpandToNeighbor(records []interval.Record, d interval.PosType) error {
	prev := -1
	for i := range records {
		curr := &records[i]
		last := i == len(records)-1
		if prev >= 0 && records[prev].Chrom != curr.Chrom {
			records[prev].End += d
			prev = -1
		}
		if prev < 0 {
			curr.Start = clampStart(curr.Start - d)
			prev = i
		} else {
			p := &records[prev]
			gap := curr.Start - p.End
			switch {
			case gap >= 2*d:
				p.End += d
				curr.Start = clampStart(curr.Start - d)
				prev = i
			case gap >= 0:
				mid := (curr.Start + p.End) / 2
				p.End = mid
				curr.Start = mid
				prev = i
			case curr.End >= p.End:
				// Overlapping, extends past prev.
				prev = i
			case curr.End < p.End:
				// Nested.
			default:
				return errors.E(errors.Integrity, fmt.Sprintf("expand.ExpandToNeighbor: no transition for %v after %v", curr, p))
			}
		}
		if last {
			curr.End += d
		}
	}
	return nil
}

// GuessTxStart collapses every record to a single base at its transcription
// start: Start for '+' records, End-1 for '-' records.  A record with no
// strand is a Precondition error; records before it have already been
// changed.
func GuessTxStart(records []interval.Record) error {
	for i := range records {
		r := &records[i]
		switch r.Strand {
		case '+':
			r.End = r.Start + 1
		case '-':
			r.Start = r.End - 1
		default:
			return errors.E(errors.Precondition, fmt.Sprintf("expand.GuessTxStart: no strand for %s:%d-%d", r.Chrom, r.Start, r.End))
		}
	}
	return nil
}

func clampStart(pos interval.PosType) interval.PosType {
	if pos < 0 {
		return 0
	}
	return pos
}
