/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages and surfaces wrap these errors with additional context.

ERROR CATEGORIES:
  1. Input errors - Rejected values at employee construction
  2. Configuration errors - Unknown allowance periods and kinds
  3. Lookup errors - Missing roster entries and records

NOT ERRORS:
  A records-for-employee query with no matches returns an empty slice,
  never an error. An employee appearing in zero records is a normal,
  expected outcome.

USAGE:
  Callers classify with errors.Is:

    if errors.Is(err, payroll.ErrNegativeInput) {
        // reject the request, 400
    }

SEE ALSO:
  - employee.go: Construction-time validation
  - allowance.go: Period normalization errors
  - api/handlers.go: HTTP status mapping via IsClientError/IsNotFound
*/
package payroll

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNegativeInput is returned when workHours, allowanceAmount,
	// baseSalary, or hourlyRate is negative. Rejected at construction,
	// surfaced immediately.
	ErrNegativeInput = errors.New("negative input")

	// ErrInvalidAllowancePeriod is returned when a period tag outside
	// {monthly, yearly, per_project} reaches the normalizer. Fatal to
	// that single call, not retried.
	ErrInvalidAllowancePeriod = errors.New("invalid allowance period")

	// ErrEmptyEmployeeID is returned when constructing an employee
	// without an identifier.
	ErrEmptyEmployeeID = errors.New("employee id must not be empty")

	// ErrUnknownKind is returned when building an employee for a kind
	// no variant has registered.
	ErrUnknownKind = errors.New("unknown employee kind")

	// ErrDuplicateEmployee is returned when registering an employee id
	// that is already on the roster.
	ErrDuplicateEmployee = errors.New("employee already registered")

	// ErrEmployeeNotFound is returned by roster lookups for an unknown
	// id. Note: store record filters do NOT return this; they return an
	// empty slice.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrRecordNotFound is returned when a payroll record id does not exist.
	ErrRecordNotFound = errors.New("payroll record not found")

	// ErrUnitMismatch is the cause carried by the panic raised when
	// arithmetic mixes amounts of different units. Always a programming
	// error, never a runtime condition.
	ErrUnitMismatch = errors.New("amount unit mismatch")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// NegativeInputError reports which field carried the negative value.
type NegativeInputError struct {
	Field string
	Value decimal.Decimal
}

func (e *NegativeInputError) Error() string {
	return fmt.Sprintf("negative input: %s = %s", e.Field, e.Value.String())
}

func (e *NegativeInputError) Unwrap() error {
	return ErrNegativeInput
}

// InvalidPeriodError reports the unrecognized allowance period tag.
type InvalidPeriodError struct {
	Period string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid allowance period: %q (want monthly, yearly, or per_project)", e.Period)
}

func (e *InvalidPeriodError) Unwrap() error {
	return ErrInvalidAllowancePeriod
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNegativeInput) ||
		errors.Is(err, ErrInvalidAllowancePeriod) ||
		errors.Is(err, ErrEmptyEmployeeID) ||
		errors.Is(err, ErrUnknownKind) ||
		errors.Is(err, ErrDuplicateEmployee)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrRecordNotFound)
}
