/*
Package contribution provides the statutory salary contribution schemes
deducted from salaried pay alongside tax.

PURPOSE:
  Keeps the non-tax half of the salaried deduction as a small closed
  vocabulary instead of loose multiplications scattered through the
  employee math. Each scheme is a fixed percentage of gross; the
  salaried variant carries its scheme set from construction.

SCHEMES:
  bpjs_kesehatan:        National health insurance, 1% of gross
  bpjs_ketenagakerjaan:  Employment social security, 2% of gross

SCOPE:
  Hourly (contract) employees carry no contribution schemes; their
  deduction is flat tax only.

EXAMPLE:
  total := contribution.Total(gross, contribution.StandardSchemes())
  // gross * 0.03

SEE ALSO:
  - employee/salaried.go: Where schemes join the deduction
  - payroll/tax.go: The other half of the deduction
*/
package contribution

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// CONTRIBUTION SCHEME
// =============================================================================

// Scheme is one statutory deduction line: a fixed rate applied to gross.
type Scheme struct {
	Code string
	Name string
	Rate decimal.Decimal
}

// Amount returns this scheme's deduction for the given gross.
func (s Scheme) Amount(gross payroll.Amount) payroll.Amount {
	return gross.Mul(s.Rate)
}

// The statutory schemes for salaried employees.
var (
	Kesehatan = Scheme{
		Code: "bpjs_kesehatan",
		Name: "BPJS Kesehatan",
		Rate: payroll.MustParseDecimal("0.01"),
	}
	Ketenagakerjaan = Scheme{
		Code: "bpjs_ketenagakerjaan",
		Name: "BPJS Ketenagakerjaan",
		Rate: payroll.MustParseDecimal("0.02"),
	}
)

// StandardSchemes returns the default salaried scheme set.
func StandardSchemes() []Scheme {
	return []Scheme{Kesehatan, Ketenagakerjaan}
}

// Total sums every scheme's deduction for the given gross.
func Total(gross payroll.Amount, schemes []Scheme) payroll.Amount {
	total := gross.Zero()
	for _, s := range schemes {
		total = total.Add(s.Amount(gross))
	}
	return total
}
