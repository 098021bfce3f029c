package interval

import (
	"sort"
)

// Sort sorts records in place by (Chrom, Start).  The sort is stable, so
// records with equal keys keep their input order.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return CompareStart(&records[i], &records[j]) < 0
	})
}

// IsSorted reports whether records are in (Chrom, Start) order.
func IsSorted(records []Record) bool {
	for i := 1; i < len(records); i++ {
		if CompareStart(&records[i-1], &records[i]) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of records, preserving order.
func Clone(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	for i := range records {
		out[i] = records[i].Clone()
	}
	return out
}
