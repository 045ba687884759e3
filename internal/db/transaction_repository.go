package db

import (
	"github.com/shopspring/decimal"
	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	database *gorm.DB
}

func NewTransactionRepository(database *gorm.DB) *TransactionRepository {
	return &TransactionRepository{database: database}
}

func (repo *TransactionRepository) Create(transaction *models.Transaction) error {
	return repo.database.Create(transaction).Error
}

func (repo *TransactionRepository) FindByID(transactionID uint) (models.Transaction, error) {
	var transaction models.Transaction
	if err := repo.database.First(&transaction, transactionID).Error; err != nil {
		return models.Transaction{}, err
	}
	return transaction, nil
}

func (repo *TransactionRepository) FetchForEmployeeMonth(employeeID uint, month string) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := repo.database.
		Where("employee_id = ? AND month = ?", employeeID, month).
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// ExistsByDedupKey matches the import job's natural dedup key:
// (employee, month, casino, deposit, withdrawal).
func (repo *TransactionRepository) ExistsByDedupKey(employeeID uint, month string, casino string, deposit decimal.Decimal, withdrawal decimal.Decimal) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Transaction{}).
		Where("employee_id = ? AND month = ? AND casino = ? AND deposit = ? AND withdrawal = ?",
			employeeID, month, casino, deposit, withdrawal).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// Correct amends a transaction's amounts and records the audit row in the
// same transaction so a correction can never go unrecorded.
func (repo *TransactionRepository) Correct(transactionID uint, correction *models.TransactionCorrection, newProfit decimal.Decimal) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(correction).Error; err != nil {
			return err
		}
		return tx.Model(&models.Transaction{}).
			Where("id = ?", transactionID).
			Updates(map[string]any{
				"deposit":    correction.NewDeposit,
				"withdrawal": correction.NewWithdrawal,
				"profit":     newProfit,
			}).Error
	})
}

func (repo *TransactionRepository) CorrectionsForTransaction(transactionID uint) ([]models.TransactionCorrection, error) {
	corrections := make([]models.TransactionCorrection, 0)
	if err := repo.database.
		Where("transaction_id = ?", transactionID).
		Order("id ASC").
		Find(&corrections).Error; err != nil {
		return nil, err
	}
	return corrections, nil
}
