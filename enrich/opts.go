package enrich

import (
	"fmt"
	"math"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/goenrich/expand"
)

// Opts configures Run and Tester.
type Opts struct {
	// Binomial selects the binomial test over allowed-region bases.
	Binomial bool
	// Hypergeometric selects the hypergeometric test over gene counts.
	Hypergeometric bool
	// Assignments reports the gene assigned to each element instead of running
	// a test.
	Assignments bool
	// NullModel draws the hypergeometric test against Inputs.NullModel.
	NullModel bool
	// Bonferroni multiplies every p-value by the number of terms tested.
	Bonferroni bool
	// MaxPValue is the largest (corrected) p-value reported.
	MaxPValue float64
	// CountUnassigned makes every element a binomial pick, not just the ones
	// that overlap a gene.
	CountUnassigned bool
	// ShowHitNames adds a column listing the gene names behind each term's
	// observed count.
	ShowHitNames bool
	// ShowParams adds the test parameters to each result row.
	ShowParams bool
	// Expansion controls how genes are reshaped before testing.
	Expansion expand.Opts
}

// DefaultOpts sets the default options.  No test mode is selected.
var DefaultOpts = Opts{
	MaxPValue: 0.05,
	Expansion: expand.DefaultOpts,
}

// Validate checks that opts selects exactly one mode and that no option
// conflicts with it.  All failures are Precondition errors.
func (o *Opts) Validate() error {
	fail := func(msg string) error {
		return errors.E(errors.Precondition, "enrich: "+msg)
	}
	switch {
	case o.Binomial && o.Hypergeometric:
		return fail("binomial and hypergeometric modes are mutually exclusive")
	case !o.Binomial && !o.Hypergeometric && !o.Assignments:
		return fail("one of binomial or hypergeometric mode is required")
	case o.Assignments && (o.Binomial || o.Hypergeometric):
		return fail("gene assignments can not be combined with a test mode")
	case o.NullModel && !o.Hypergeometric:
		return fail("a null model requires hypergeometric mode")
	case o.NullModel && o.ShowHitNames:
		return fail("hit names can not be shown with a null model")
	case o.Expansion.Distance < 0:
		return fail(fmt.Sprintf("negative expansion distance %d", o.Expansion.Distance))
	case math.IsNaN(o.MaxPValue):
		return fail("max p-value is NaN")
	}
	return nil
}
