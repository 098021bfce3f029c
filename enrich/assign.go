package enrich

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/goenrich/interval"
)

// Assignment is the gene assigned to one element.
type Assignment struct {
	Element interval.Record
	// Assigned is false when the element overlaps no gene; Gene and Distance
	// are then unset.
	Assigned bool
	Gene     string
	// Distance is measured to the gene's unexpanded span.
	Distance interval.PosType
}

// Assign assigns each element to the first gene in expandedGenes it overlaps,
// in sweep order.  The distance is measured to the first gene in
// originalGenes with the same name.  Both gene lists must be sorted, and an
// assigned gene missing from originalGenes is an Integrity error.
func Assign(elements, expandedGenes, originalGenes []interval.Record) ([]Assignment, error) {
	byName := make(map[string]int, len(originalGenes))
	for i := len(originalGenes) - 1; i >= 0; i-- {
		byName[originalGenes[i].Name] = i
	}
	out := make([]Assignment, 0, len(elements))
	i, j := 0, 0
	for i < len(elements) && j < len(expandedGenes) {
		e, g := &elements[i], &expandedGenes[j]
		if interval.Overlap(e, g) {
			k, ok := byName[g.Name]
			if !ok || g.Name == "" {
				return nil, errors.E(errors.Integrity, fmt.Sprintf("enrich.Assign: no unexpanded gene named %q", g.Name))
			}
			d, err := interval.Distance(e, &originalGenes[k])
			if err != nil {
				return nil, err
			}
			out = append(out, Assignment{Element: *e, Assigned: true, Gene: g.Name, Distance: d})
			i++
		} else if interval.CompareEnd(e, g) < 0 {
			out = append(out, Assignment{Element: *e})
			i++
		} else {
			j++
		}
	}
	for ; i < len(elements); i++ {
		out = append(out, Assignment{Element: elements[i]})
	}
	return out, nil
}
