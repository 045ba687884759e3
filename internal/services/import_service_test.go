package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

type stubImportEmployeeReader struct {
	employees map[string]models.Employee
}

func (stub *stubImportEmployeeReader) FindByHandle(handle string) (models.Employee, error) {
	employee, ok := stub.employees[handle]
	if !ok {
		return models.Employee{}, gorm.ErrRecordNotFound
	}
	return employee, nil
}

type stubImportTransactionStore struct {
	created []models.Transaction
}

func (stub *stubImportTransactionStore) Create(transaction *models.Transaction) error {
	transaction.ID = uint(len(stub.created) + 1)
	stub.created = append(stub.created, *transaction)
	return nil
}

func (stub *stubImportTransactionStore) ExistsByDedupKey(employeeID uint, month string, casino string, deposit decimal.Decimal, withdrawal decimal.Decimal) (bool, error) {
	for _, transaction := range stub.created {
		if transaction.EmployeeID == employeeID &&
			transaction.Month == month &&
			transaction.Casino == casino &&
			transaction.Deposit.Equal(deposit) &&
			transaction.Withdrawal.Equal(withdrawal) {
			return true, nil
		}
	}
	return false, nil
}

func newImportTestService(employees ...models.Employee) (*ImportService, *stubImportTransactionStore) {
	reader := &stubImportEmployeeReader{employees: make(map[string]models.Employee)}
	for _, employee := range employees {
		reader.employees[employee.Handle] = employee
	}
	store := &stubImportTransactionStore{}
	return NewImportService(reader, store), store
}

func importTestRow(deposit int64, withdrawal int64) ImportRow {
	return ImportRow{
		Handle:     "alice",
		Month:      "2025-08",
		Date:       "2025-08-03",
		Casino:     "lucky-star",
		Deposit:    decimal.NewFromInt(deposit),
		Withdrawal: decimal.NewFromInt(withdrawal),
	}
}

func TestUpsertRowsCreatesAndDerivesProfit(t *testing.T) {
	service, store := newImportTestService(models.Employee{ID: 1, Handle: "@alice", IsActive: true})

	result, err := service.UpsertRows([]ImportRow{importTestRow(100, 150)})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.Imported != 1 || result.Skipped != 0 {
		t.Fatalf("expected 1 imported, got %#v", result)
	}
	if result.BatchID == "" {
		t.Fatal("expected a batch id")
	}

	created := store.created[0]
	if created.EmployeeID != 1 {
		t.Fatalf("expected employee 1, got %d", created.EmployeeID)
	}
	if !created.Profit.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected derived profit 50, got %s", created.Profit)
	}
	if created.ImportBatchID != result.BatchID {
		t.Fatalf("expected batch id on the row, got %q", created.ImportBatchID)
	}
}

func TestUpsertRowsSkipsDedupKeyDuplicates(t *testing.T) {
	service, store := newImportTestService(models.Employee{ID: 1, Handle: "@alice", IsActive: true})

	first, err := service.UpsertRows([]ImportRow{importTestRow(100, 150)})
	if err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	second, err := service.UpsertRows([]ImportRow{importTestRow(100, 150), importTestRow(0, 75)})
	if err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	if second.Imported != 1 || second.Skipped != 1 {
		t.Fatalf("expected 1 imported and 1 skipped, got %#v", second)
	}
	if len(store.created) != 2 {
		t.Fatalf("expected 2 stored rows, got %d", len(store.created))
	}
	if first.BatchID == second.BatchID {
		t.Fatal("expected distinct batch ids per request")
	}
}

func TestUpsertRowsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(row *ImportRow)
		want   error
	}{
		{name: "bad month", mutate: func(row *ImportRow) { row.Month = "2025/08" }, want: ErrValidation},
		{name: "empty casino", mutate: func(row *ImportRow) { row.Casino = "  " }, want: ErrValidation},
		{name: "bad date", mutate: func(row *ImportRow) { row.Date = "yesterday" }, want: ErrValidation},
		{name: "date outside month", mutate: func(row *ImportRow) { row.Date = "2025-09-01" }, want: ErrValidation},
		{name: "unknown handle", mutate: func(row *ImportRow) { row.Handle = "ghost" }, want: ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			service, store := newImportTestService(models.Employee{ID: 1, Handle: "@alice", IsActive: true})
			row := importTestRow(10, 20)
			testCase.mutate(&row)

			if _, err := service.UpsertRows([]ImportRow{row}); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
			if len(store.created) != 0 {
				t.Fatal("rejected row must not be stored")
			}
		})
	}
}
