package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

type LedgerTransactionStore interface {
	FindByID(transactionID uint) (models.Transaction, error)
	Correct(transactionID uint, correction *models.TransactionCorrection, newProfit decimal.Decimal) error
	CorrectionsForTransaction(transactionID uint) ([]models.TransactionCorrection, error)
}

// LedgerService owns the correction flow: imported rows are immutable except
// through here, and every amendment leaves an audit row.
type LedgerService struct {
	transactions LedgerTransactionStore
	now          func() time.Time
}

func NewLedgerService(transactions LedgerTransactionStore) *LedgerService {
	return &LedgerService{
		transactions: transactions,
		now:          time.Now,
	}
}

type CorrectionInput struct {
	Deposit    decimal.Decimal `json:"deposit"`
	Withdrawal decimal.Decimal `json:"withdrawal"`
	Reason     string          `json:"reason"`
}

func (service *LedgerService) CorrectTransaction(transactionID uint, managerID uint, input CorrectionInput) (models.TransactionCorrection, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return models.TransactionCorrection{}, ErrValidation
	}
	if input.Deposit.Sign() < 0 || input.Withdrawal.Sign() < 0 {
		return models.TransactionCorrection{}, ErrValidation
	}

	transaction, err := service.transactions.FindByID(transactionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.TransactionCorrection{}, ErrNotFound
	}
	if err != nil {
		return models.TransactionCorrection{}, err
	}

	correction := models.TransactionCorrection{
		TransactionID: transaction.ID,
		ManagerID:     managerID,
		OldDeposit:    transaction.Deposit,
		OldWithdrawal: transaction.Withdrawal,
		NewDeposit:    input.Deposit,
		NewWithdrawal: input.Withdrawal,
		Reason:        reason,
		CreatedAt:     service.now(),
	}

	newProfit := input.Withdrawal.Sub(input.Deposit)
	if err := service.transactions.Correct(transaction.ID, &correction, newProfit); err != nil {
		return models.TransactionCorrection{}, err
	}
	return correction, nil
}

func (service *LedgerService) CorrectionHistory(transactionID uint) ([]models.TransactionCorrection, error) {
	if _, err := service.transactions.FindByID(transactionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return service.transactions.CorrectionsForTransaction(transactionID)
}
