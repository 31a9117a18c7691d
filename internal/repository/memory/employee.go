package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/schoolsuite/payroll-backend-go/internal/domain/employee"
)

// EmployeeRepository is an in-memory registry. The payroll core only
// reads it; Put exists for seeding and for tests that correct a
// misconfigured employee between runs.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository(seed ...employee.Employee) *EmployeeRepository {
	employees := make(map[string]employee.Employee, len(seed))
	for _, e := range seed {
		employees[e.ID] = e
	}
	return &EmployeeRepository{employees: employees}
}

func (r *EmployeeRepository) Put(e employee.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[e.ID] = e
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) ListActive(_ context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []employee.Employee
	for _, e := range r.employees {
		if e.IsActive {
			active = append(active, e)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}
