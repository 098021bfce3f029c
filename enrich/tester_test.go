package enrich

import (
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/goenrich/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gene(chrom string, start, end interval.PosType, name string, terms ...string) interval.Record {
	return interval.Record{Chrom: chrom, Start: start, End: end, Name: name, Terms: terms}
}

func region(chrom string, start, end interval.PosType) interval.Record {
	return interval.Record{Chrom: chrom, Start: start, End: end}
}

func TestTesterBinomial(t *testing.T) {
	elements := []interval.Record{
		gene("chr1", 100, 200, "e1"),
		gene("chr1", 600, 610, "e2"),
		gene("chr1", 900, 950, "e3"),
	}
	genes := []interval.Record{
		gene("chr1", 150, 250, "geneA", "GO:1"),
		gene("chr1", 500, 700, "geneB", "GO:1", "GO:2"),
	}
	regions := []interval.Record{region("chr1", 0, 1000)}

	results, err := NewTester(Opts{ShowHitNames: true}).Binomial(elements, genes, regions, []string{"GO:1", "GO:2"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	r := results[0]
	assert.Equal(t, "GO:1", r.Term)
	assert.Equal(t, Params{
		Model:            ModelBinomial,
		Expected:         0.6,
		WhiteBallsPicked: 2,
		TotalPicks:       2,
		WhiteBalls:       300,
		TotalBalls:       1000,
		Prob:             0.3,
	}, roundParams(r.Params))
	assert.InDelta(t, 0.09, r.PValue, 1e-12)
	assert.Equal(t, []string{"geneA", "geneB"}, r.Hits)

	r = results[1]
	assert.Equal(t, int64(1), r.Params.WhiteBallsPicked)
	assert.Equal(t, int64(200), r.Params.WhiteBalls)
	assert.InDelta(t, 1-0.8*0.8, r.PValue, 1e-12)
	assert.Equal(t, []string{"geneB"}, r.Hits)

	// Unassigned elements count as picks.
	results, err = NewTester(Opts{CountUnassigned: true}).Binomial(elements, genes, regions, []string{"GO:2"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), results[0].Params.TotalPicks)
	assert.Nil(t, results[0].Hits)

	_, err = NewTester(Opts{}).Binomial(elements, genes, nil, []string{"GO:1"})
	assert.True(t, errors.Is(errors.Invalid, err))

	unnamed := []interval.Record{region("chr1", 150, 250)}
	unnamed[0].Terms = []string{"GO:1"}
	_, err = NewTester(Opts{ShowHitNames: true}).Binomial(elements, unnamed, regions, []string{"GO:1"})
	assert.True(t, errors.Is(errors.Integrity, err))
	assert.Equal(t, KindInvariant, ErrorKind(err))
}

// roundParams rounds the float fields of p so they compare exactly.
func roundParams(p Params) Params {
	round := func(v float64) float64 {
		return float64(int64(v*1e9+0.5)) / 1e9
	}
	p.Expected = round(p.Expected)
	p.Prob = round(p.Prob)
	return p
}

func TestTesterHypergeometric(t *testing.T) {
	genes := []interval.Record{
		gene("chr1", 0, 100, "g1", "GO:A"),
		gene("chr1", 200, 300, "g2", "GO:A", "GO:B"),
		gene("chr1", 400, 500, "g3", "GO:B"),
		gene("chr2", 0, 100, "g4", "GO:C"),
	}
	elements := []interval.Record{
		region("chr1", 50, 60),
		region("chr1", 250, 260),
	}
	results, err := NewTester(Opts{ShowHitNames: true}).Hypergeometric(elements, genes, []string{"GO:A", "GO:B", "GO:C"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, Params{Model: ModelHypergeometric, Expected: 1, WhiteBallsPicked: 2, TotalPicks: 2, WhiteBalls: 2, TotalBalls: 4}, results[0].Params)
	assert.InDelta(t, 1.0/6, results[0].PValue, 1e-12)
	assert.Equal(t, []string{"g1", "g2"}, results[0].Hits)

	assert.Equal(t, int64(1), results[1].Params.WhiteBallsPicked)
	assert.InDelta(t, 5.0/6, results[1].PValue, 1e-12)
	assert.Equal(t, []string{"g2"}, results[1].Hits)

	assert.Equal(t, 1.0, results[2].PValue)
	assert.Nil(t, results[2].Hits)
	assert.Equal(t, 0.5, results[2].Params.Expected)
}

func TestTesterHypergeometricNullModel(t *testing.T) {
	nullModel := []interval.Record{
		region("chr1", 0, 100),
		region("chr1", 200, 300),
		region("chr1", 400, 500),
		region("chr1", 600, 700),
	}
	genes := []interval.Record{
		gene("chr1", 50, 60, "g1", "GO:A"),
		gene("chr1", 250, 260, "g2", "GO:A"),
		gene("chr1", 650, 660, "g3", "GO:B"),
	}
	elements := []interval.Record{
		region("chr1", 10, 20),
		region("chr1", 280, 290),
		region("chr1", 410, 420),
	}
	results, err := NewTester(Opts{}).HypergeometricNullModel(elements, nullModel, genes, []string{"GO:A", "GO:B"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, Params{Model: ModelHypergeometricNullModel, Expected: 1.5, WhiteBallsPicked: 2, TotalPicks: 3, WhiteBalls: 2, TotalBalls: 4}, results[0].Params)
	assert.InDelta(t, 0.5, results[0].PValue, 1e-12)
	assert.Equal(t, Params{Model: ModelHypergeometricNullModel, Expected: 0.75, WhiteBallsPicked: 0, TotalPicks: 3, WhiteBalls: 1, TotalBalls: 4}, results[1].Params)
	assert.Equal(t, 1.0, results[1].PValue)
}
