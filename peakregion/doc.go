/*Package peakregion does the bookkeeping for chromatographic peak regions:
  which parts of a chromatogram each peak identification may claim when the
  identified windows conflict, which analytes are selected for chromatogram
  export, and reading/writing peak-region tables.

  A peak-region table is a TSV with the header
    CHROM  LABEL  START  STOP  COLOR
  where CHROM names the chromatogram (e.g. an extracted-ion trace), LABEL the
  analyte, START/STOP the retention-time window and COLOR an optional
  "#rrggbb" display color.  The COLOR column may be omitted, and a COLOR cell
  may be empty; either way the label's default color is used.  Rows may be in
  any order; row order is the claim priority.
*/
package peakregion
