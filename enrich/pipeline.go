package enrich

import (
	"context"
	"io"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/goenrich/expand"
	"github.com/grailbio/goenrich/goterm"
	"github.com/grailbio/goenrich/interval"
)

// Paths names the input files of a run.  NullModel and TermNames are
// optional.
type Paths struct {
	Elements       string
	Genes          string
	AllowedRegions string
	NullModel      string
	TermNames      string
}

// Inputs are the loaded inputs of a run.
type Inputs struct {
	Elements       []interval.Record
	Genes          []interval.Record
	AllowedRegions []interval.Record
	// NullModel is used only when Opts.NullModel is set.
	NullModel []interval.Record
	// TermNames maps GO terms to descriptions.  If non-nil, results carry a
	// description column.
	TermNames map[string]string
}

// Load reads the files named by paths.  The interval files are read in
// parallel; only I/O is concurrent, and Run processes the lists on one goroutine.
func Load(ctx context.Context, paths Paths) (in Inputs, err error) {
	type loadJob struct {
		path string
		dst  *[]interval.Record
	}
	jobs := []loadJob{
		{paths.Elements, &in.Elements},
		{paths.Genes, &in.Genes},
		{paths.AllowedRegions, &in.AllowedRegions},
	}
	if paths.NullModel != "" {
		jobs = append(jobs, loadJob{paths.NullModel, &in.NullModel})
	}
	if err = traverse.Each(len(jobs), func(i int) error {
		records, err := interval.ReadFile(ctx, jobs[i].path)
		*jobs[i].dst = records
		return err
	}); err != nil {
		return
	}
	if paths.TermNames != "" {
		if in.TermNames, err = goterm.ReadNames(ctx, paths.TermNames); err != nil {
			return
		}
	}
	log.Printf("loaded %d elements, %d genes, %d allowed regions", len(in.Elements), len(in.Genes), len(in.AllowedRegions))
	return
}

// logCoverage logs the chromosomes and bases covered by records.  It returns
// false if records could not be summarized.
func logCoverage(what string, records []interval.Record) (interval.Union, bool) {
	u, err := interval.NewUnion(records)
	if err != nil {
		log.Error.Printf("%s: %v", what, err)
		return u, false
	}
	log.Printf("%s: %d bases on %d chromosomes", what, u.Bases(), len(u.Chroms()))
	return u, true
}

// Run validates opts, runs the selected test (or gene assignment) on in and
// writes the report to w.
//
// Run sorts the lists in in and may collapse in.Genes to transcription
// starts; expansion is applied to a copy.  Nothing is written if an error
// occurs before the report.
func Run(in Inputs, opts Opts, w io.Writer) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	expander, err := expand.New(opts.Expansion)
	if err != nil {
		return err
	}
	if err := expander.CollapseToTxStart(in.Genes); err != nil {
		return err
	}
	interval.Sort(in.Elements)
	interval.Sort(in.Genes)
	interval.Sort(in.AllowedRegions)
	if opts.NullModel {
		interval.Sort(in.NullModel)
	}
	logCoverage("elements", in.Elements)
	if allowed, ok := logCoverage("allowed regions", in.AllowedRegions); ok && opts.Binomial {
		if n := allowed.CountOutside(in.Elements); n > 0 {
			log.Printf("%d of %d elements start outside the allowed regions", n, len(in.Elements))
		}
	}

	terms := goterm.Extract(in.Genes).Terms()
	log.Debug.Printf("%d distinct GO terms", len(terms))

	originalGenes := in.Genes
	expandedGenes := interval.Clone(originalGenes)
	if err := expander.Apply(expandedGenes); err != nil {
		return err
	}
	logCoverage("expanded genes", expandedGenes)

	if opts.Assignments {
		assignments, err := Assign(in.Elements, expandedGenes, originalGenes)
		if err != nil {
			return err
		}
		return WriteAssignments(w, assignments)
	}

	tester := NewTester(opts)
	var results []Result
	switch {
	case opts.Binomial:
		results, err = tester.Binomial(in.Elements, expandedGenes, in.AllowedRegions, terms)
	case opts.NullModel:
		results, err = tester.HypergeometricNullModel(in.Elements, in.NullModel, expandedGenes, terms)
	default:
		results, err = tester.Hypergeometric(in.Elements, expandedGenes, terms)
	}
	if err != nil {
		return err
	}
	if opts.Bonferroni {
		Bonferroni(results, len(terms))
	}
	SortByPValue(results)
	results = Filter(results, opts.MaxPValue)
	log.Printf("%d of %d terms pass p <= %g", len(results), len(terms), opts.MaxPValue)
	return WriteResults(w, results, opts, in.TermNames)
}
