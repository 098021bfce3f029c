package enrich

import (
	"io"
	"strings"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/goenrich/goterm"
)

const noAssignment = "NONE"

// writeFloat writes v the way C's %g does.
func writeFloat(w *tsv.Writer, v float64) {
	w.WriteFloat64(v, 'g', 6)
}

// writeParams writes the parameter columns of p.  Binomial results report
// (expected, observed, picks, prob, background bases); hypergeometric ones
// report (expected, observed, picks, white balls, total balls).
func writeParams(w *tsv.Writer, p *Params) {
	writeFloat(w, p.Expected)
	w.WriteInt64(p.WhiteBallsPicked)
	w.WriteInt64(p.TotalPicks)
	if p.Model == ModelBinomial {
		writeFloat(w, p.Prob)
	} else {
		w.WriteInt64(p.WhiteBalls)
	}
	w.WriteInt64(p.TotalBalls)
}

// WriteResults writes one TSV row per result:
//
//   term, p-value, [params], [description], [hit names]
//
// Params are written if opts.ShowParams is set, hit names (comma separated)
// if opts.ShowHitNames is set, and the term description if names is non-nil.
// Every term must then have a description; a missing one is a NotExist error,
// and nothing is written.
func WriteResults(w io.Writer, results []Result, opts Opts, names map[string]string) error {
	var descriptions []string
	if names != nil {
		descriptions = make([]string, len(results))
		for i := range results {
			text, err := goterm.Lookup(names, results[i].Term)
			if err != nil {
				return err
			}
			descriptions[i] = text
		}
	}
	tw := tsv.NewWriter(w)
	for i := range results {
		r := &results[i]
		tw.WriteString(r.Term)
		writeFloat(tw, r.PValue)
		if opts.ShowParams {
			writeParams(tw, &r.Params)
		}
		if descriptions != nil {
			tw.WriteString(descriptions[i])
		}
		if opts.ShowHitNames {
			tw.WriteString(strings.Join(r.Hits, ","))
		}
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteAssignments writes one TSV row per element:
//
//   chrom, start, end, element name, gene name, distance
//
// Unassigned elements have NONE as gene name and distance, as do unnamed
// elements for their name.
func WriteAssignments(w io.Writer, assignments []Assignment) error {
	tw := tsv.NewWriter(w)
	for i := range assignments {
		a := &assignments[i]
		tw.WriteString(a.Element.Chrom)
		tw.WriteInt64(int64(a.Element.Start))
		tw.WriteInt64(int64(a.Element.End))
		if a.Element.Name == "" {
			tw.WriteString(noAssignment)
		} else {
			tw.WriteString(a.Element.Name)
		}
		if a.Assigned {
			tw.WriteString(a.Gene)
			tw.WriteInt64(int64(a.Distance))
		} else {
			tw.WriteString(noAssignment)
			tw.WriteString(noAssignment)
		}
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}
