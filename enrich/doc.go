// Package enrich computes GO-term enrichment of a set of genomic elements.
//
// Genes annotated with GO terms are optionally collapsed to their
// transcription start and expanded by a fixed distance.  Each term is then
// tested for over-representation among the genes hit by the elements, using
// either a binomial test over the bases of an allowed-region background or a
// hypergeometric test over gene counts (optionally drawn against a null-model
// interval set).  Results may be Bonferroni corrected, are ranked by p-value,
// and are written as TSV.
//
// Instead of a test, Run can also report, for every element, the first
// expanded gene it overlaps and its distance to that gene's unexpanded span.
//
// All interval lists are sorted by (Chrom, Start) before use; see package
// interval for the sweeps this package is built on.
package enrich
