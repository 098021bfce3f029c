package interval

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/errors"
)

// Union is the set of bases covered by a record sequence.  It is stored as a
// chromosome-keyed map of sorted endpoint sequences, where the (0-based) start
// of merged interval #k is in element [2k] and its end in element [2k+1].
//
// Union summarizes inputs for logging and serves as an independent coverage
// oracle in tests.
type Union struct {
	// nameMap is a chromosome-keyed map with disjoint-interval-set values.
	// Always initialized.
	nameMap map[string][]PosType
}

func initUnion() (u Union) {
	u.nameMap = make(map[string][]PosType)
	return
}

// NewUnion builds a Union from records sorted by (Chrom, Start), merging
// touching/overlapping records and dropping empty ones.
func NewUnion(records []Record) (u Union, err error) {
	u = initUnion()
	started := false
	prevChr := ""
	var prevStart, prevEnd PosType
	var chrIntervals []PosType
	for i := range records {
		r := &records[i]
		if r.End <= r.Start {
			continue
		}
		if !started || prevChr != r.Chrom {
			if started {
				if r.Chrom < prevChr {
					err = errors.E(errors.Invalid, fmt.Sprintf("interval.NewUnion: unsorted input (%s after %s)", r.Chrom, prevChr))
					return
				}
				// Save last interval, add to map.
				chrIntervals = append(chrIntervals, prevStart, prevEnd)
				u.nameMap[prevChr] = chrIntervals
			}
			prevChr = r.Chrom
			if _, found := u.nameMap[prevChr]; found {
				err = errors.E(errors.Invalid, fmt.Sprintf("interval.NewUnion: unsorted input (split chromosome %v)", prevChr))
				return
			}
			chrIntervals = []PosType{}
			prevStart = r.Start
			prevEnd = r.End
			started = true
			continue
		}
		if r.Start > prevEnd {
			// New interval doesn't overlap previous one, so we can save the previous
			// one.
			chrIntervals = append(chrIntervals, prevStart, prevEnd)
			prevStart = r.Start
			prevEnd = r.End
		} else {
			if r.Start < prevStart {
				err = errors.E(errors.Invalid, "interval.NewUnion: unsorted input")
				return
			}
			// Intervals overlap, merge them.
			if r.End > prevEnd {
				prevEnd = r.End
			}
		}
	}
	if started {
		chrIntervals = append(chrIntervals, prevStart, prevEnd)
		u.nameMap[prevChr] = chrIntervals
	}
	return
}

// Contains reports whether base pos of chrom is covered.
func (u *Union) Contains(chrom string, pos PosType) bool {
	endpoints := u.nameMap[chrom]
	i := sort.Search(len(endpoints), func(i int) bool { return endpoints[i] > pos })
	return i%2 == 1
}

// CountOutside returns the number of records whose first base is not covered.
func (u *Union) CountOutside(records []Record) int {
	n := 0
	for i := range records {
		if !u.Contains(records[i].Chrom, records[i].Start) {
			n++
		}
	}
	return n
}

// Chroms returns the chromosomes with at least one covered base, in sorted
// order.
func (u *Union) Chroms() []string {
	chroms := make([]string, 0, len(u.nameMap))
	for chr := range u.nameMap {
		chroms = append(chroms, chr)
	}
	sort.Strings(chroms)
	return chroms
}

// Bases returns the number of covered bases.
func (u *Union) Bases() int64 {
	var total int64
	for _, endpoints := range u.nameMap {
		for i := 0; i+1 < len(endpoints); i += 2 {
			total += int64(endpoints[i+1] - endpoints[i])
		}
	}
	return total
}

// IntersectBases returns the number of bases covered by both u and other.
func (u *Union) IntersectBases(other *Union) int64 {
	var total int64
	for chr, a := range u.nameMap {
		b := other.nameMap[chr]
		i, j := 0, 0
		for i < len(a) && j < len(b) {
			start := maxPos(a[i], b[j])
			end := minPos(a[i+1], b[j+1])
			if end > start {
				total += int64(end - start)
			}
			if a[i+1] < b[j+1] {
				i += 2
			} else {
				j += 2
			}
		}
	}
	return total
}
