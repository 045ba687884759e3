package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one raw ledger row produced by the spreadsheet import job.
// Amounts are carried in the primary currency plus local-currency mirrors;
// profit is always withdrawal minus deposit in the primary currency.
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	EmployeeID      uint            `gorm:"index;not null" json:"employee_id"`
	Month           string          `gorm:"index;not null" json:"month"`
	Date            time.Time       `gorm:"not null" json:"date"`
	Casino          string          `gorm:"not null" json:"casino"`
	Deposit         decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"deposit"`
	Withdrawal      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"withdrawal"`
	DepositLocal    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"deposit_local"`
	WithdrawalLocal decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"withdrawal_local"`
	Profit          decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"profit"`
	ImportBatchID   string          `gorm:"not null;default:''" json:"import_batch_id"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
}

// TransactionCorrection is the audit row written whenever a manager amends
// an already-imported transaction.
type TransactionCorrection struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TransactionID uint            `gorm:"index;not null" json:"transaction_id"`
	ManagerID     uint            `gorm:"not null" json:"manager_id"`
	OldDeposit    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"old_deposit"`
	OldWithdrawal decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"old_withdrawal"`
	NewDeposit    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"new_deposit"`
	NewWithdrawal decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"new_withdrawal"`
	Reason        string          `gorm:"not null" json:"reason"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
}
