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

/*
Given a set of genomic elements and a set of genes annotated with GO terms,
bio-enrich reports the GO terms whose genes are hit by the elements more
often than expected by chance.

Genes are first expanded by -max-expansion bases on each side (0 disables
expansion); with -no-expansion-overlap, expansion stops at the midpoint
between neighboring genes.  With -guess-tx-start, each gene is first collapsed
to the single base at its transcription start, using the strand column.

Exactly one test must be selected:

  -binom     a binomial test: an element is a pick, and the chance of hitting a
             gene with the term is the fraction of the allowed bases (the
             third positional argument) those genes cover.
  -hypergeo  a hypergeometric test: genes are the urn, and the genes hit by an
             element are the draw.  With -large-set, the intervals of that
             file are the urn instead.

Alternatively, -gene-assignments prints, for each element, the first gene
it hits and its distance to the unexpanded gene.

Input files are BED-like, tab-separated and optionally gzipped:

  elements:       chrom start end [name]
  genes:          chrom start end name GO:1,GO:2,... [strand]
  allowed bases:  chrom start end

Sample usage:
bio-enrich \
    -binom \
    -bonferroni \
    -show-params \
    -go-term-to-english go-names.tsv \
    elements.bed genes.bed nogap.bed > enrichment.tsv

Each output row has the GO term and its p-value, followed by the optional
columns: test parameters (-show-params), term description
(-go-term-to-english) and hit gene names (-show-names).  Rows are sorted by
p-value, and only terms with p-value <= -max-pvalue are printed.
*/
package main
