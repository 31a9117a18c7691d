package employee

import "context"

// EmployeeRepository is the read-only view the payroll core has of the
// employee registry. Writes belong to an external admin surface.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
}
