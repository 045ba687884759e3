package db

import "gorm.io/gorm"

type Repositories struct {
	Employees      *EmployeeRepository
	Sessions       *SessionRepository
	Transactions   *TransactionRepository
	Salaries       *SalaryRepository
	PayoutRequests *PayoutRequestRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Employees:      NewEmployeeRepository(database),
		Sessions:       NewSessionRepository(database),
		Transactions:   NewTransactionRepository(database),
		Salaries:       NewSalaryRepository(database),
		PayoutRequests: NewPayoutRequestRepository(database),
	}
}
