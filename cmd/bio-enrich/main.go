// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/goenrich/enrich"
	"github.com/grailbio/goenrich/interval"
)

var (
	binom              = flag.Bool("binom", false, "Use the binomial test over allowed bases")
	hypergeo           = flag.Bool("hypergeo", false, "Use the hypergeometric test over genes")
	bonferroni         = flag.Bool("bonferroni", enrich.DefaultOpts.Bonferroni, "Apply a Bonferroni correction for the number of GO terms tested")
	maxExpansion       = flag.Int64("max-expansion", int64(enrich.DefaultOpts.Expansion.Distance), "Number of bases to expand each gene by on each side; 0 disables expansion")
	noExpansionOverlap = flag.Bool("no-expansion-overlap", enrich.DefaultOpts.Expansion.NeighborBounded, "Stop gene expansion at the midpoint between neighboring genes")
	maxPValue          = flag.Float64("max-pvalue", enrich.DefaultOpts.MaxPValue, "Only report terms with a p-value at most this")
	guessTxStart       = flag.Bool("guess-tx-start", enrich.DefaultOpts.Expansion.GuessTxStart, "Collapse each gene to its transcription start using the strand column")
	goTermToEnglish    = flag.String("go-term-to-english", "", "Two-column TSV of GO term descriptions to add to the output")
	showNames          = flag.Bool("show-names", enrich.DefaultOpts.ShowHitNames, "List the names of the genes hit for each term")
	showParams         = flag.Bool("show-params", enrich.DefaultOpts.ShowParams, "Print the test parameters for each term")
	largeSet           = flag.String("large-set", "", "BED file of intervals to use as the hypergeometric null model")
	countUnassigned    = flag.Bool("count-unassigned", enrich.DefaultOpts.CountUnassigned, "Count elements that hit no gene as binomial picks")
	geneAssignments    = flag.Bool("gene-assignments", enrich.DefaultOpts.Assignments, "Print the gene assigned to each element instead of running a test")
)

func bioEnrichUsage() {
	fmt.Printf("Usage: %s [OPTIONS] elements.bed genes.bed nogap.bed\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioEnrichUsage
	shutdown := grail.Init()
	defer shutdown()

	allArgs := flag.Args()
	nPositionalArgs := flag.NArg()
	positionalArgs := allArgs[len(allArgs)-nPositionalArgs:]
	if nPositionalArgs != 3 {
		log.Fatalf("Expected 3 positional arguments (elements, genes and allowed-region BED paths); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
	}
	opts := enrich.DefaultOpts
	opts.Binomial = *binom
	opts.Hypergeometric = *hypergeo
	opts.Assignments = *geneAssignments
	opts.NullModel = *largeSet != ""
	opts.Bonferroni = *bonferroni
	opts.MaxPValue = *maxPValue
	opts.CountUnassigned = *countUnassigned
	opts.ShowHitNames = *showNames
	opts.ShowParams = *showParams
	opts.Expansion.Distance = interval.PosType(*maxExpansion)
	opts.Expansion.NeighborBounded = *noExpansionOverlap
	opts.Expansion.GuessTxStart = *guessTxStart
	if err := opts.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	ctx := vcontext.Background()
	in, err := enrich.Load(ctx, enrich.Paths{
		Elements:       positionalArgs[0],
		Genes:          positionalArgs[1],
		AllowedRegions: positionalArgs[2],
		NullModel:      *largeSet,
		TermNames:      *goTermToEnglish,
	})
	if err != nil {
		log.Fatalf("%s: %v", enrich.ErrorKind(err), err)
	}
	if err := enrich.Run(in, opts, os.Stdout); err != nil {
		log.Fatalf("%s: %v", enrich.ErrorKind(err), err)
	}
	log.Debug.Printf("exiting")
}
