package enrich

import (
	"fmt"
	"math"

	"github.com/grailbio/base/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// BinomialPValue returns P(X >= picked) for X ~ Binomial(picks, prob).  It is
// exactly 1 when picked is 0.
func BinomialPValue(picked, picks int64, prob float64) (float64, error) {
	if picked < 0 || picks < 0 || math.IsNaN(prob) || prob < 0 || prob > 1 {
		return 0, errors.E(errors.Integrity, fmt.Sprintf("enrich.BinomialPValue: bad parameters picked=%d picks=%d prob=%g", picked, picks, prob))
	}
	switch {
	case picked == 0:
		return 1, nil
	case picked > picks || prob == 0:
		return 0, nil
	case prob == 1:
		return 1, nil
	}
	// The upper tail of the binomial is a regularized incomplete beta function.
	return mathext.RegIncBeta(float64(picked), float64(picks-picked+1), prob), nil
}

// BinomialExpected returns the mean hit count of picks draws at prob.
func BinomialExpected(picks int64, prob float64) float64 {
	return distuv.Binomial{N: float64(picks), P: prob}.Mean()
}

// HypergeometricPValue returns P(X >= picked) where X counts the white balls
// among picks balls drawn without replacement from an urn holding total
// balls, white of which are white.  It is exactly 1 when picked is 0.
func HypergeometricPValue(picked, picks, white, total int64) (float64, error) {
	if picked < 0 || total < 0 || white < 0 || white > total || picks < 0 || picks > total {
		return 0, errors.E(errors.Integrity, fmt.Sprintf("enrich.HypergeometricPValue: bad parameters picked=%d picks=%d white=%d total=%d", picked, picks, white, total))
	}
	if picked == 0 {
		return 1, nil
	}
	hi := picks
	if white < hi {
		hi = white
	}
	lo := picked
	if black := total - white; picks-black > lo {
		lo = picks - black
	}
	if lo > hi {
		return 0, nil
	}
	logDenom := combin.LogGeneralizedBinomial(float64(total), float64(picks))
	terms := make([]float64, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		terms = append(terms,
			combin.LogGeneralizedBinomial(float64(white), float64(k))+
				combin.LogGeneralizedBinomial(float64(total-white), float64(picks-k))-
				logDenom)
	}
	return math.Min(1, math.Exp(floats.LogSumExp(terms))), nil
}

// HypergeometricExpected returns the mean white count among picks draws.
func HypergeometricExpected(picks, white, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(white) / float64(total) * float64(picks)
}

// Bonferroni multiplies the p-value of every result by nTests, capping it at
// 1.
func Bonferroni(results []Result, nTests int) {
	for i := range results {
		results[i].PValue = math.Min(1, results[i].PValue*float64(nTests))
	}
}
