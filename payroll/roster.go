/*
roster.go - Registered employees available for processing

PURPOSE:
  The roster owns the set of live employee values the surfaces operate
  on: the console adds to it, the API creates into it, and pay runs walk
  it. It is the caller-side collaborator responsible for employee-id
  uniqueness; the engine itself never checks ids.

UNIQUENESS:
  Add rejects an id that is already registered (ErrDuplicateEmployee).
  Find on an unknown id is ErrEmployeeNotFound - note this differs from
  the record store, where filtering by an unknown employee returns an
  empty slice because "no records yet" is a normal state.

ORDERING:
  All() preserves registration order, matching the record log's
  insertion-order discipline. Reads hand out copies of the slice.

SEE ALSO:
  - run.go: Processes the whole roster in one batch
  - api/handlers.go, console: The writers
*/
package payroll

import "sync"

// =============================================================================
// ROSTER - Employee registry with registration order
// =============================================================================

type Roster struct {
	mu    sync.RWMutex
	byID  map[EmployeeID]Employee
	order []EmployeeID
}

func NewRoster() *Roster {
	return &Roster{byID: make(map[EmployeeID]Employee)}
}

// Add registers an employee. The id must not already be present.
func (r *Roster) Add(e Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := e.EmployeeID()
	if _, exists := r.byID[id]; exists {
		return &duplicateEmployeeError{id: id}
	}
	r.byID[id] = e
	r.order = append(r.order, id)
	return nil
}

// Find returns the registered employee or ErrEmployeeNotFound.
func (r *Roster) Find(id EmployeeID) (Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, &employeeNotFoundError{id: id}
	}
	return e, nil
}

// All returns every registered employee in registration order.
func (r *Roster) All() []Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Employee, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result
}

// Size returns the number of registered employees.
func (r *Roster) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// =============================================================================
// ERRORS
// =============================================================================

type duplicateEmployeeError struct {
	id EmployeeID
}

func (e *duplicateEmployeeError) Error() string {
	return "employee already registered: " + string(e.id)
}

func (e *duplicateEmployeeError) Unwrap() error { return ErrDuplicateEmployee }

type employeeNotFoundError struct {
	id EmployeeID
}

func (e *employeeNotFoundError) Error() string {
	return "employee not found: " + string(e.id)
}

func (e *employeeNotFoundError) Unwrap() error { return ErrEmployeeNotFound }
