package enrich

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/goenrich/goterm"
	"github.com/grailbio/goenrich/interval"
)

// Tester runs one enrichment test per GO term.  All interval lists passed to
// its methods must be sorted by (Chrom, Start).
type Tester struct {
	opts Opts
}

// NewTester creates a Tester.  Only Opts.CountUnassigned and
// Opts.ShowHitNames affect it.
func NewTester(opts Opts) *Tester {
	return &Tester{opts: opts}
}

// hitCollector returns an OverlapFunc that appends the name of the record
// picked by name to *hits, or nil if hit names are off.
func (t *Tester) hitCollector(hits *[]string, name func(a, b *interval.Record) *interval.Record) interval.OverlapFunc {
	if !t.opts.ShowHitNames {
		return nil
	}
	return func(a, b *interval.Record) error {
		r := name(a, b)
		if r.Name == "" {
			return errors.E(errors.Integrity, fmt.Sprintf("enrich: hit names requested, but %s:%d-%d has no name", r.Chrom, r.Start, r.End))
		}
		*hits = append(*hits, r.Name)
		return nil
	}
}

func first(a, _ *interval.Record) *interval.Record { return a }
func second(_, b *interval.Record) *interval.Record { return b }

// Binomial tests each term by the number of elements that hit a gene carrying
// it, against the share of allowed bases covered by such genes.
func (t *Tester) Binomial(elements, genes, regions []interval.Record, terms []string) ([]Result, error) {
	totalBalls := interval.TotalBases(regions)
	if totalBalls == 0 {
		return nil, errors.E(errors.Invalid, "enrich.Binomial: the allowed regions cover no bases")
	}
	var totalPicks int64
	if t.opts.CountUnassigned {
		totalPicks = int64(len(elements))
	} else {
		totalPicks = int64(interval.CountOverlaps(elements, genes))
	}
	log.Debug.Printf("binomial: %d picks over %d bases, %d terms", totalPicks, totalBalls, len(terms))
	results := make([]Result, 0, len(terms))
	for _, term := range terms {
		var hits []string
		whiteBalls := interval.SumOverlapBasesWithTerm(genes, term, regions)
		picked, err := interval.CountOverlapsWithTerms(elements, interval.AnyTerm, genes, term, t.hitCollector(&hits, second))
		if err != nil {
			return nil, err
		}
		prob := float64(whiteBalls) / float64(totalBalls)
		p, err := BinomialPValue(int64(picked), totalPicks, prob)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{
			Term:   term,
			PValue: p,
			Params: Params{
				Model:            ModelBinomial,
				Expected:         BinomialExpected(totalPicks, prob),
				WhiteBallsPicked: int64(picked),
				TotalPicks:       totalPicks,
				WhiteBalls:       whiteBalls,
				TotalBalls:       totalBalls,
				Prob:             prob,
			},
			Hits: hits,
		})
	}
	return results, nil
}

// Hypergeometric tests each term by the number of genes carrying it that are
// hit by an element, with the genes as the urn and the hit genes as the draw.
func (t *Tester) Hypergeometric(elements, genes []interval.Record, terms []string) ([]Result, error) {
	totalBalls := int64(len(genes))
	totalPicks := int64(interval.CountOverlaps(genes, elements))
	log.Debug.Printf("hypergeometric: %d of %d genes hit, %d terms", totalPicks, totalBalls, len(terms))
	results := make([]Result, 0, len(terms))
	for _, term := range terms {
		var hits []string
		whiteBalls := int64(goterm.CountWithTerm(genes, term))
		picked, err := interval.CountOverlapsWithTerms(genes, term, elements, interval.AnyTerm, t.hitCollector(&hits, first))
		if err != nil {
			return nil, err
		}
		r, err := hypergeometricResult(ModelHypergeometric, term, int64(picked), totalPicks, whiteBalls, totalBalls)
		if err != nil {
			return nil, err
		}
		r.Hits = hits
		results = append(results, r)
	}
	return results, nil
}

// HypergeometricNullModel is Hypergeometric with the null-model intervals as
// the urn: a null-model interval is white when it overlaps a gene carrying the
// term, and drawn when it overlaps an element.
func (t *Tester) HypergeometricNullModel(elements, nullModel, genes []interval.Record, terms []string) ([]Result, error) {
	totalBalls := int64(len(nullModel))
	totalPicks := int64(interval.CountOverlaps(nullModel, elements))
	log.Debug.Printf("hypergeometric: %d of %d null model intervals hit, %d terms", totalPicks, totalBalls, len(terms))
	results := make([]Result, 0, len(terms))
	for _, term := range terms {
		whiteBalls, err := interval.CountOverlapsWithTerms(nullModel, interval.AnyTerm, genes, term, nil)
		if err != nil {
			return nil, err
		}
		picked := interval.CountThreeWayOverlap(nullModel, interval.AnyTerm, genes, term, elements, interval.AnyTerm)
		r, err := hypergeometricResult(ModelHypergeometricNullModel, term, int64(picked), totalPicks, int64(whiteBalls), totalBalls)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func hypergeometricResult(model Model, term string, picked, picks, white, total int64) (Result, error) {
	p, err := HypergeometricPValue(picked, picks, white, total)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Term:   term,
		PValue: p,
		Params: Params{
			Model:            model,
			Expected:         HypergeometricExpected(picks, white, total),
			WhiteBallsPicked: picked,
			TotalPicks:       picks,
			WhiteBalls:       white,
			TotalBalls:       total,
		},
	}, nil
}
