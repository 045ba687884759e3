package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

// leaderBonusAmount is the flat award for the month's top non-manager gross
// earner.
var leaderBonusAmount = decimal.NewFromInt(300)

type SalaryEmployeeReader interface {
	ListActive() ([]models.Employee, error)
}

type SalaryStore interface {
	FindByID(salaryID uint) (models.Salary, error)
	ListForMonth(month string) ([]models.Salary, error)
	Upsert(salary *models.Salary) error
	MarkPaid(salaryID uint, paymentHash string, paidAt time.Time) (bool, error)
}

type SalaryService struct {
	employees    SalaryEmployeeReader
	transactions EarningsTransactionReader
	salaries     SalaryStore
	now          func() time.Time
}

func NewSalaryService(employees SalaryEmployeeReader, transactions EarningsTransactionReader, salaries SalaryStore) *SalaryService {
	return &SalaryService{
		employees:    employees,
		transactions: transactions,
		salaries:     salaries,
		now:          time.Now,
	}
}

// Recompute aggregates the month for every active employee and caches the
// result as Salary rows. Rows already marked paid are never rewritten, so a
// recompute after payday cannot silently change what was paid out.
func (service *SalaryService) Recompute(month string) ([]models.Salary, error) {
	if !ValidMonthCode(month) {
		return nil, ErrValidation
	}

	employees, err := service.employees.ListActive()
	if err != nil {
		return nil, err
	}

	summaries := make([]EarningsSummary, 0, len(employees))
	for _, employee := range employees {
		transactions, err := service.transactions.FetchForEmployeeMonth(employee.ID, month)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, BuildEarningsSummary(employee, month, transactions))
	}

	leaderID := monthLeaderEmployeeID(employees, summaries)

	now := service.now()
	salaries := make([]models.Salary, 0, len(summaries))
	for _, summary := range summaries {
		leaderBonus := decimal.Zero
		if leaderID != 0 && summary.EmployeeID == leaderID {
			leaderBonus = leaderBonusAmount
		}

		salary := models.Salary{
			EmployeeID:  summary.EmployeeID,
			Month:       month,
			Base:        summary.Base,
			Bonus:       summary.Bonus,
			LeaderBonus: leaderBonus,
			Total:       summary.Base.Add(summary.Bonus).Add(leaderBonus),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := service.salaries.Upsert(&salary); err != nil {
			return nil, err
		}
		salaries = append(salaries, salary)
	}
	return salaries, nil
}

func (service *SalaryService) ListForMonth(month string) ([]models.Salary, error) {
	if !ValidMonthCode(month) {
		return nil, ErrValidation
	}
	return service.salaries.ListForMonth(month)
}

// MarkPaid records the payment exactly once. A repeat call conflicts and
// leaves the original paid_at and payment hash untouched.
func (service *SalaryService) MarkPaid(salaryID uint, paymentHash string) (models.Salary, error) {
	if _, err := service.salaries.FindByID(salaryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Salary{}, ErrNotFound
		}
		return models.Salary{}, err
	}

	transitioned, err := service.salaries.MarkPaid(salaryID, paymentHash, service.now())
	if err != nil {
		return models.Salary{}, err
	}
	if !transitioned {
		return models.Salary{}, ErrConflict
	}
	return service.salaries.FindByID(salaryID)
}

// monthLeaderEmployeeID picks the single top non-manager gross earner; zero
// when no non-manager finished the month with positive gross profit.
func monthLeaderEmployeeID(employees []models.Employee, summaries []EarningsSummary) uint {
	managers := make(map[uint]bool, len(employees))
	for _, employee := range employees {
		managers[employee.ID] = employee.IsManager
	}

	var leaderID uint
	var best decimal.Decimal
	for _, summary := range summaries {
		if managers[summary.EmployeeID] {
			continue
		}
		if summary.GrossProfit.Sign() <= 0 {
			continue
		}
		if leaderID == 0 || summary.GrossProfit.GreaterThan(best) {
			leaderID = summary.EmployeeID
			best = summary.GrossProfit
		}
	}
	return leaderID
}
