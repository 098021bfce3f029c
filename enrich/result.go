package enrich

import (
	"sort"
)

// Model identifies the test that produced a Result.
type Model int

const (
	// ModelBinomial is the binomial test over allowed-region bases.
	ModelBinomial Model = iota
	// ModelHypergeometric is the hypergeometric test over genes.
	ModelHypergeometric
	// ModelHypergeometricNullModel is the hypergeometric test over a null
	// model interval set.
	ModelHypergeometricNullModel
)

func (m Model) String() string {
	switch m {
	case ModelBinomial:
		return "binomial"
	case ModelHypergeometric:
		return "hypergeometric"
	case ModelHypergeometricNullModel:
		return "hypergeometric-null-model"
	}
	return "unknown"
}

// Params are the quantities a p-value was computed from.
type Params struct {
	Model    Model
	Expected float64
	// WhiteBallsPicked is the observed count.
	WhiteBallsPicked int64
	TotalPicks       int64
	// For ModelBinomial, WhiteBalls and TotalBalls count bases, and Prob is
	// their ratio.
	WhiteBalls int64
	TotalBalls int64
	Prob       float64
}

// Result is the outcome of testing one GO term.
type Result struct {
	Term   string
	PValue float64
	Params Params
	// Hits are the names of the genes behind Params.WhiteBallsPicked, in sweep
	// order.  Nil unless hit names were requested.
	Hits []string
}

// SortByPValue sorts results by ascending p-value.  Ties keep their order.
func SortByPValue(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PValue < results[j].PValue
	})
}

// Filter returns the results with p-value at most maxP.  It reuses the
// backing array of results.
func Filter(results []Result, maxP float64) []Result {
	out := results[:0]
	for _, r := range results {
		if r.PValue <= maxP {
			out = append(out, r)
		}
	}
	return out
}
