package interval

import (
	"fmt"
	"math"
	"strings"

	"github.com/grailbio/base/errors"
)

// PosType is the coordinate type.  It is 64 bits wide since expanded gene
// spans and base totals over a whole genome are summed in it.
type PosType int64

// AnyTerm is the term that every record matches.  Sweeps take it in place of a
// GO term when a list is not filtered by term.
const AnyTerm = ""

// Record is a single genomic interval.
type Record struct {
	Chrom string
	// Start is 0-based, End is exclusive.
	Start PosType
	End   PosType
	// Name is empty when the input row had no name column.
	Name string
	// Terms holds the GO terms attached to the record, each at most once.
	Terms []string
	// Strand is '+', '-', or 0 when absent.
	Strand byte
}

// ParsePos parses a decimal coordinate with an optional leading '-'.
func ParsePos(s string) (PosType, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("interval.ParsePos: invalid signed number: %q", s))
	}
	var res PosType
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, errors.E(errors.Invalid, fmt.Sprintf("interval.ParsePos: invalid signed number: %q", s))
		}
		d := PosType(c - '0')
		if res > (math.MaxInt64-d)/10 {
			return 0, errors.E(errors.Invalid, fmt.Sprintf("interval.ParsePos: out of range: %q", s))
		}
		res = res*10 + d
	}
	if s[0] == '-' {
		return -res, nil
	}
	return res, nil
}

// splitTerms parses a comma-separated term list, dropping empty items and
// repeats.
func splitTerms(s string) []string {
	if s == "" {
		return nil
	}
	var terms []string
	for _, t := range strings.Split(s, ",") {
		if t == "" {
			continue
		}
		dup := false
		for _, seen := range terms {
			if seen == t {
				dup = true
				break
			}
		}
		if !dup {
			terms = append(terms, t)
		}
	}
	return terms
}

// NewRecord builds a Record from a row of 3 to 6 fields:
//   chrom, start, end, [name], [comma-separated GO terms], [strand]
func NewRecord(row []string) (r Record, err error) {
	if len(row) < 3 || len(row) > 6 {
		err = errors.E(errors.Invalid, fmt.Sprintf("interval.NewRecord: row has %d fields when it needs between 3 and 6", len(row)))
		return
	}
	r.Chrom = row[0]
	if r.Start, err = ParsePos(row[1]); err != nil {
		return
	}
	if r.End, err = ParsePos(row[2]); err != nil {
		return
	}
	if len(row) > 3 {
		r.Name = row[3]
	}
	if len(row) > 4 {
		r.Terms = splitTerms(row[4])
	}
	if len(row) > 5 && len(row[5]) > 0 {
		r.Strand = row[5][0]
	}
	return
}

// Clone returns a copy of r that shares no mutable state with it.
func (r *Record) Clone() Record {
	c := *r
	if r.Terms != nil {
		c.Terms = make([]string, len(r.Terms))
		copy(c.Terms, r.Terms)
	}
	return c
}

// HasTerm reports whether the record carries term.  AnyTerm always matches.
func (r *Record) HasTerm(term string) bool {
	if term == AnyTerm {
		return true
	}
	for _, t := range r.Terms {
		if t == term {
			return true
		}
	}
	return false
}

// Len returns the number of bases covered by the record.
func (r *Record) Len() PosType {
	return r.End - r.Start
}

// String returns the record as a BED line without terms or strand.
func (r *Record) String() string {
	if r.Name == "" {
		return fmt.Sprintf("%s\t%d\t%d", r.Chrom, r.Start, r.End)
	}
	return fmt.Sprintf("%s\t%d\t%d\t%s", r.Chrom, r.Start, r.End, r.Name)
}

// CompareStart returns (negative int, 0, positive int) if a is
// (before, at, after) b in (Chrom, Start) order.  This is the order every
// sweep requires.
func CompareStart(a, b *Record) int {
	if c := strings.Compare(a.Chrom, b.Chrom); c != 0 {
		return c
	}
	switch {
	case a.Start < b.Start:
		return -1
	case a.Start > b.Start:
		return 1
	}
	return 0
}

// CompareEnd is like CompareStart, but on (Chrom, End).  Sweeps use it to
// decide which cursor to advance.
func CompareEnd(a, b *Record) int {
	if c := strings.Compare(a.Chrom, b.Chrom); c != 0 {
		return c
	}
	switch {
	case a.End < b.End:
		return -1
	case a.End > b.End:
		return 1
	}
	return 0
}

// Overlap reports whether a and b share at least one base.
func Overlap(a, b *Record) bool {
	if a.Chrom != b.Chrom {
		return false
	}
	return minPos(a.End, b.End)-maxPos(a.Start, b.Start) > 0
}

// Distance returns the number of bases between a and b, or 0 if they overlap.
// Both must be on the same chromosome.
func Distance(a, b *Record) (PosType, error) {
	if a.Chrom != b.Chrom {
		return 0, errors.E(errors.Integrity, fmt.Sprintf("interval.Distance: can not calculate distance between %s and %s", a.Chrom, b.Chrom))
	}
	if Overlap(a, b) {
		return 0, nil
	}
	return minPos(absDiff(a.Start, b.End-1), absDiff(a.End-1, b.Start)), nil
}

func minPos(a, b PosType) PosType {
	if a < b {
		return a
	}
	return b
}

func maxPos(a, b PosType) PosType {
	if a > b {
		return a
	}
	return b
}

func absDiff(a, b PosType) PosType {
	if a >= b {
		return a - b
	}
	return b - a
}
