/*Package interval implements closed-interval arithmetic over float64
  coordinates, as used for retention-time and m/z windows of chromatographic
  peaks.

  Membership and overlap tests are exclusive at the boundaries: a value equal
  to either endpoint is not inside a range, and ranges which only touch at an
  endpoint do not overlap.  Reduce subtracts one range from another, which is
  how already-claimed parts of a chromatogram are carved out of a candidate
  peak region.  Set keeps a caller-owned union of disjoint ranges as a sorted
  endpoint sequence.
*/
package interval
