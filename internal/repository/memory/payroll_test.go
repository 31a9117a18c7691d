package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRecord(employeeID, period string) payroll.PayrollRecord {
	return payroll.PayrollRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Period:     period,
		Status:     payroll.RecordStatusPending,
	}
}

func TestCreate_InsertIfAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPayrollRepository()

	first, err := repo.Create(ctx, pendingRecord("emp-1", "2024-01"))
	require.NoError(t, err)
	assert.False(t, first.CreatedAt.IsZero())

	_, err = repo.Create(ctx, pendingRecord("emp-1", "2024-01"))
	assert.ErrorIs(t, err, payroll.ErrDuplicateRecord)

	// Different period for the same employee is a different key.
	_, err = repo.Create(ctx, pendingRecord("emp-1", "2024-02"))
	assert.NoError(t, err)
}

func TestCreate_ConcurrentWritersSameKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPayrollRepository()

	const writers = 32
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, pendingRecord("emp-1", "2024-01"))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, payroll.ErrDuplicateRecord)
		}
	}
	assert.Equal(t, 1, winners, "exactly one writer may create the record")
}

func TestGetByEmployeePeriod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPayrollRepository()

	created, err := repo.Create(ctx, pendingRecord("emp-7", "2024-03"))
	require.NoError(t, err)

	got, err := repo.GetByEmployeePeriod(ctx, "emp-7", "2024-03")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByEmployeePeriod(ctx, "emp-7", "2024-04")
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}

func TestUpdate_PreservesCreatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPayrollRepository()

	created, err := repo.Create(ctx, pendingRecord("emp-1", "2024-01"))
	require.NoError(t, err)

	created.Status = payroll.RecordStatusProcessed
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)

	assert.Equal(t, payroll.RecordStatusProcessed, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdate_UnknownRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPayrollRepository()

	_, err := repo.Update(ctx, pendingRecord("emp-1", "2024-01"))
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}

func TestListByPeriod_Filters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPayrollRepository()

	for i := 0; i < 3; i++ {
		rec := pendingRecord(fmt.Sprintf("emp-%d", i), "2024-01")
		if i == 0 {
			rec.Status = payroll.RecordStatusProcessed
		}
		_, err := repo.Create(ctx, rec)
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, pendingRecord("emp-0", "2024-02"))
	require.NoError(t, err)

	all, err := repo.ListByPeriod(ctx, "2024-01", payroll.RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	processed := payroll.RecordStatusProcessed
	filtered, err := repo.ListByPeriod(ctx, "2024-01", payroll.RecordFilter{Status: &processed})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "emp-0", filtered[0].EmployeeID)
}

func TestRecordsAreIsolatedFromCallerMutation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPayrollRepository()

	rec := pendingRecord("emp-1", "2024-01")
	created, err := repo.Create(ctx, rec)
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	created.Status = payroll.RecordStatusProcessed
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.RecordStatusPending, got.Status)
}
