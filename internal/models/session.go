package models

import "time"

// Session is an opaque login token. A session is honored only while its
// expiry is in the future and its owner is still active; violating either
// deletes the record at resolution time.
type Session struct {
	ID         uint      `gorm:"primaryKey"`
	Token      string    `gorm:"uniqueIndex;not null"`
	EmployeeID uint      `gorm:"index;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (session *Session) ExpiredAt(now time.Time) bool {
	return !now.Before(session.ExpiresAt)
}
