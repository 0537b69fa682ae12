/*
summary.go - Aggregate totals over the record log

PURPOSE:
  Computes the aggregate payroll summary from records. This is the
  calculation that answers "what has this process paid out in total?"

KEY INSIGHT:
  Every record satisfies Net == Gross - Deductions exactly, so the sum
  of differences equals the difference of sums: TotalGross minus
  TotalDeductions always equals TotalNet, with no tolerance window
  needed (decimal arithmetic, no float drift).

SEE ALSO:
  - snapshot.go: Caching of this computation between appends
  - store.go: The Summary operation every store implements
*/
package payroll

// =============================================================================
// SUMMARY - Aggregate over all records
// =============================================================================

// Summary holds the aggregate totals over a record sequence.
type Summary struct {
	Count           int
	TotalGross      Amount
	TotalNet        Amount
	TotalDeductions Amount
}

// Summarize folds a record sequence into its aggregate totals.
// An empty sequence yields a zero summary, not an error.
func Summarize(recs []PayrollRecord) Summary {
	s := Summary{
		TotalGross:      ZeroIDR(),
		TotalNet:        ZeroIDR(),
		TotalDeductions: ZeroIDR(),
	}
	for _, r := range recs {
		s.Count++
		s.TotalGross = s.TotalGross.Add(r.Gross)
		s.TotalNet = s.TotalNet.Add(r.Net)
		s.TotalDeductions = s.TotalDeductions.Add(r.Deductions)
	}
	return s
}
