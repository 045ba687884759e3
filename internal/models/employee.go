package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Handle        string          `gorm:"uniqueIndex;not null" json:"handle"`
	PasswordHash  string          `gorm:"not null;default:''" json:"-"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
	IsManager     bool            `gorm:"not null;default:false" json:"is_manager"`
	ProfitPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"profit_percent"`
	PayoutAddress string          `gorm:"not null;default:''" json:"payout_address"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
}

// HasCredential reports whether the employee has completed first-time
// registration. Provisioned accounts start without a password hash.
func (employee *Employee) HasCredential() bool {
	return employee.PasswordHash != ""
}
