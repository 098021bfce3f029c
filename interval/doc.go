/*Package interval implements the record model and sorted-sequence algebra used
  for GO-term enrichment of genomic regions.
  Records are BED-like, with half-open [Start, End) coordinates, an optional
  name, an optional set of GO terms and an optional strand.  Collections are
  plain []Record slices.

  Every sweep in this package walks its inputs once with forward-only cursors,
  so all inputs must already be sorted by (Chrom, Start), with Chrom compared
  lexicographically (see Sort).  This is not checked: unsorted input silently
  produces wrong counts.
*/
package interval
