/*
employee.go - Employee capability contract and kind registry

PURPOSE:
  Defines what the engine needs from an employee: identity, the raw
  inputs it was built from, and the three pay computations. Concrete
  variants live in the employee package; this file also provides the
  registry that lets the factory and API construct variants from their
  kind tag without this package knowing the concrete types.

HOW IT WORKS:
  1. The employee package defines its variants (salaried, hourly)
  2. It registers a builder per kind in init()
  3. The factory resolves a kind tag to a builder and constructs

CLOSED VARIANT SET:
  Only the employee package registers builders. The registry exists for
  deserialization dispatch, not for runtime plugins; adding a variant is
  a code change in exactly one package.

COMPUTATION CONTRACT:
  Deduction takes the already-computed gross explicitly. Callers compute
  gross once, derive the deduction from that value, and subtract; the
  engine never recomputes gross behind the caller's back, so
  Net == Gross - Deduction(Gross) holds exactly.

SEE ALSO:
  - employee/types.go: Kind constants and registration
  - processor.go: The compute-once pipeline
  - factory package: JSON definitions resolved through this registry
*/
package payroll

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// =============================================================================
// EMPLOYEE - Capability contract for pay computation
// =============================================================================

// Employee is the closed capability set the engine computes pay from.
// Implementations are immutable after construction; WithWorkHours returns
// an adjusted copy rather than mutating.
type Employee interface {
	EmployeeID() EmployeeID
	Kind() Kind

	// WorkHours returns the hours worked in the period being processed.
	WorkHours() decimal.Decimal

	// Allowance returns the raw allowance amount and its period tag,
	// pre-normalization.
	Allowance() (Amount, AllowancePeriod)

	// WithWorkHours returns a copy of this employee with different work
	// hours. Used by projections; rejects negative hours.
	WithWorkHours(hours decimal.Decimal) (Employee, error)

	// Gross computes the gross salary for one pay period.
	Gross() (Amount, error)

	// Deduction computes the total deduction from an explicitly passed,
	// already-computed gross. Pure; never recomputes gross.
	Deduction(gross Amount) Amount

	// Net computes gross minus deduction-of-that-gross.
	Net() (Amount, error)
}

// =============================================================================
// EMPLOYEE CONFIG - Variant-agnostic construction inputs
// =============================================================================

// EmployeeConfig carries every field any variant can need. Builders read
// the fields their kind uses and validate them; fields for other kinds
// are ignored.
type EmployeeConfig struct {
	ID              EmployeeID
	WorkHours       decimal.Decimal
	AllowanceAmount Amount
	AllowancePeriod AllowancePeriod

	// Salaried only.
	BaseSalary Amount

	// Hourly only.
	HourlyRate Amount

	// Optional override; nil selects the kind's default strategy.
	Tax TaxStrategy
}

// =============================================================================
// KIND REGISTRY
// =============================================================================

// KindBuilder constructs a concrete employee variant from a config.
type KindBuilder func(EmployeeConfig) (Employee, error)

var (
	kindRegistry = make(map[Kind]KindBuilder)
	registryMu   sync.RWMutex
)

// RegisterKind adds a variant builder to the registry.
// Call this from the employee package init() only.
func RegisterKind(k Kind, build KindBuilder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	kindRegistry[k] = build
}

// LookupKind finds a registered builder. Returns nil if not found.
func LookupKind(k Kind) KindBuilder {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return kindRegistry[k]
}

// MustLookupKind finds a registered builder or panics.
// Use in tests or when you're certain the kind exists.
func MustLookupKind(k Kind) KindBuilder {
	b := LookupKind(k)
	if b == nil {
		panic(fmt.Sprintf("employee kind not registered: %s", k))
	}
	return b
}

// ListKinds returns all registered kinds.
func ListKinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make([]Kind, 0, len(kindRegistry))
	for k := range kindRegistry {
		result = append(result, k)
	}
	return result
}

// BuildEmployee constructs an employee of the given kind, surfacing the
// builder's own validation errors unchanged.
func BuildEmployee(k Kind, cfg EmployeeConfig) (Employee, error) {
	b := LookupKind(k)
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	return b(cfg)
}
