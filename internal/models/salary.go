package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary is the cached aggregation result for one employee and month.
// Only the recompute pass and the one-way mark-paid action mutate it.
type Salary struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	EmployeeID  uint            `gorm:"uniqueIndex:idx_salaries_employee_month;not null" json:"employee_id"`
	Month       string          `gorm:"uniqueIndex:idx_salaries_employee_month;not null" json:"month"`
	Base        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"base"`
	Bonus       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"bonus"`
	LeaderBonus decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"leader_bonus"`
	Total       decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"total"`
	Paid        bool            `gorm:"not null;default:false" json:"paid"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	PaymentHash string          `gorm:"not null;default:''" json:"payment_hash"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}
