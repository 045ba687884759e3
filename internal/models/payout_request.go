package models

import "time"

const (
	PayoutRequestPending  = "pending"
	PayoutRequestApproved = "approved"
	PayoutRequestRejected = "rejected"
)

// PayoutChangeRequest tracks an employee's request to change the payout
// address. At most one pending request may exist per employee.
type PayoutChangeRequest struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	EmployeeID uint       `gorm:"index;not null" json:"employee_id"`
	Address    string     `gorm:"not null" json:"address"`
	Status     string     `gorm:"not null;default:pending" json:"status"`
	ReviewerID *uint      `json:"reviewer_id,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
}
