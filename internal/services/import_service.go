package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

type ImportEmployeeReader interface {
	FindByHandle(handle string) (models.Employee, error)
}

type ImportTransactionStore interface {
	Create(transaction *models.Transaction) error
	ExistsByDedupKey(employeeID uint, month string, casino string, deposit decimal.Decimal, withdrawal decimal.Decimal) (bool, error)
}

// ImportService receives transaction rows from the spreadsheet-import
// collaborator. Rows are trusted as correct; the only guard here is the
// natural dedup key (employee, month, casino, deposit, withdrawal).
type ImportService struct {
	employees    ImportEmployeeReader
	transactions ImportTransactionStore
	now          func() time.Time
}

func NewImportService(employees ImportEmployeeReader, transactions ImportTransactionStore) *ImportService {
	return &ImportService{
		employees:    employees,
		transactions: transactions,
		now:          time.Now,
	}
}

type ImportRow struct {
	Handle          string          `json:"handle"`
	Month           string          `json:"month"`
	Date            string          `json:"date"`
	Casino          string          `json:"casino"`
	Deposit         decimal.Decimal `json:"deposit"`
	Withdrawal      decimal.Decimal `json:"withdrawal"`
	DepositLocal    decimal.Decimal `json:"deposit_local"`
	WithdrawalLocal decimal.Decimal `json:"withdrawal_local"`
}

type ImportResult struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// UpsertRows stores every row that does not already exist under the dedup
// key. The whole request shares one uuid batch id so a bad import can be
// traced back afterwards.
func (service *ImportService) UpsertRows(rows []ImportRow) (ImportResult, error) {
	result := ImportResult{BatchID: uuid.NewString()}

	for _, row := range rows {
		transaction, err := service.buildTransaction(row, result.BatchID)
		if err != nil {
			return ImportResult{}, err
		}

		exists, err := service.transactions.ExistsByDedupKey(
			transaction.EmployeeID, transaction.Month, transaction.Casino,
			transaction.Deposit, transaction.Withdrawal,
		)
		if err != nil {
			return ImportResult{}, err
		}
		if exists {
			result.Skipped++
			continue
		}

		if err := service.transactions.Create(&transaction); err != nil {
			return ImportResult{}, err
		}
		result.Imported++
	}
	return result, nil
}

func (service *ImportService) buildTransaction(row ImportRow, batchID string) (models.Transaction, error) {
	if !ValidMonthCode(row.Month) {
		return models.Transaction{}, ErrValidation
	}
	casino := strings.TrimSpace(row.Casino)
	if casino == "" {
		return models.Transaction{}, ErrValidation
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(row.Date))
	if err != nil {
		return models.Transaction{}, ErrValidation
	}
	if date.Format("2006-01") != row.Month {
		return models.Transaction{}, ErrValidation
	}

	employee, err := service.employees.FindByHandle(NormalizeHandle(row.Handle))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Transaction{}, ErrNotFound
	}
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		EmployeeID:      employee.ID,
		Month:           row.Month,
		Date:            date,
		Casino:          casino,
		Deposit:         row.Deposit,
		Withdrawal:      row.Withdrawal,
		DepositLocal:    row.DepositLocal,
		WithdrawalLocal: row.WithdrawalLocal,
		Profit:          row.Withdrawal.Sub(row.Deposit),
		ImportBatchID:   batchID,
		CreatedAt:       service.now(),
	}, nil
}
