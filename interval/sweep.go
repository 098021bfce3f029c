package interval

// This file contains the sweeps over sorted record sequences.  Each one keeps
// one index cursor per input and only ever moves cursors forward.  When two
// records don't overlap, the one with the smaller (Chrom, End) is advanced,
// never the one with the smaller start.
//
// Base-counting sweeps also keep a per-chromosome watermark, prevEnd, which is
// the rightmost position already added to the sum.  Overlap that lies left of
// the watermark has been counted before and is skipped.

// OverlapFunc is called by CountOverlapsWithTerms for every overlapping pair
// that is counted.
type OverlapFunc func(a, b *Record) error

// CountOverlaps returns the number of records in a that overlap at least one
// record in b.
func CountOverlaps(a, b []Record) int {
	n, _ := CountOverlapsWithTerms(a, AnyTerm, b, AnyTerm, nil)
	return n
}

// CountOverlapsWithTerms returns the number of records in a carrying termA
// that overlap at least one record in b carrying termB.  Each record of a is
// counted at most once, and fn, if non-nil, sees the pair that counted it.
// An error returned by fn stops the sweep.
func CountOverlapsWithTerms(a []Record, termA string, b []Record, termB string, fn OverlapFunc) (int, error) {
	count := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ra, rb := &a[i], &b[j]
		if !ra.HasTerm(termA) {
			i++
			continue
		}
		if !rb.HasTerm(termB) {
			j++
			continue
		}
		if Overlap(ra, rb) {
			if fn != nil {
				if err := fn(ra, rb); err != nil {
					return count, err
				}
			}
			count++
			i++
		} else if CompareEnd(ra, rb) < 0 {
			i++
		} else {
			j++
		}
	}
	return count, nil
}

// SumOverlapBases returns the number of bases covered by both a and b.  Bases
// covered several times in either list are counted once.
func SumOverlapBases(a, b []Record) int64 {
	return sumOverlapBases(a, AnyTerm, b)
}

// SumOverlapBasesWithTerm is SumOverlapBases restricted to the genes carrying
// term.  Genes without the term are stepped over and do not move the
// watermark.
func SumOverlapBasesWithTerm(genes []Record, term string, regions []Record) int64 {
	return sumOverlapBases(genes, term, regions)
}

func sumOverlapBases(a []Record, termA string, b []Record) int64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var sum int64
	var prevEnd PosType
	prevChr := a[0].Chrom
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ra, rb := &a[i], &b[j]
		if !ra.HasTerm(termA) {
			i++
			continue
		}
		if ra.Chrom != prevChr {
			prevChr = ra.Chrom
			prevEnd = 0
		}
		if Overlap(ra, rb) {
			overlapStart := maxPos(ra.Start, rb.Start)
			overlapEnd := minPos(ra.End, rb.End)
			if overlapStart >= prevEnd {
				sum += int64(overlapEnd - overlapStart)
			} else if overlapEnd > prevEnd {
				sum += int64(overlapEnd - prevEnd)
			}
			prevEnd = maxPos(prevEnd, overlapEnd)
		}
		if CompareEnd(ra, rb) <= 0 {
			i++
		} else {
			j++
		}
	}
	return sum
}

// CountThreeWayOverlap returns the number of records in a carrying termA that
// overlap both a record in b carrying termB and a record in c carrying termC.
func CountThreeWayOverlap(a []Record, termA string, b []Record, termB string, c []Record, termC string) int {
	count := 0
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) && k < len(c) {
		ra, rb, rc := &a[i], &b[j], &c[k]
		switch {
		case !ra.HasTerm(termA):
			i++
		case !rb.HasTerm(termB):
			j++
		case !rc.HasTerm(termC):
			k++
		case Overlap(ra, rb) && Overlap(ra, rc):
			count++
			i++
		case CompareEnd(ra, rb) < 0 && CompareEnd(ra, rc) < 0:
			i++
		case CompareEnd(rb, rc) < 0:
			j++
		default:
			k++
		}
	}
	return count
}

// TotalBases returns the number of bases covered by records, counting
// overlapping stretches once.
func TotalBases(records []Record) int64 {
	if len(records) == 0 {
		return 0
	}
	var sum int64
	var prevEnd PosType
	prevChr := records[0].Chrom
	for i := range records {
		r := &records[i]
		if r.Chrom != prevChr {
			prevChr = r.Chrom
			prevEnd = 0
		}
		if r.Start > prevEnd {
			sum += int64(r.End - r.Start)
		} else if r.End > prevEnd {
			sum += int64(r.End - prevEnd)
		}
		prevEnd = maxPos(prevEnd, r.End)
	}
	return sum
}
