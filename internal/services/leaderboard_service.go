package services

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sorokindm/crewtally/internal/models"
)

type LeaderboardEmployeeReader interface {
	List() ([]models.Employee, error)
}

type LeaderboardSalaryReader interface {
	ListForMonth(month string) ([]models.Salary, error)
}

type LeaderboardService struct {
	employees LeaderboardEmployeeReader
	salaries  LeaderboardSalaryReader
}

func NewLeaderboardService(employees LeaderboardEmployeeReader, salaries LeaderboardSalaryReader) *LeaderboardService {
	return &LeaderboardService{
		employees: employees,
		salaries:  salaries,
	}
}

type LeaderboardEntry struct {
	Rank       int             `json:"rank"`
	EmployeeID uint            `json:"employee_id"`
	Handle     string          `json:"handle"`
	Total      decimal.Decimal `json:"total"`
	Paid       bool            `json:"paid"`
}

// BuildForMonth projects salaries onto a ranked board. Managers are excluded
// regardless of their totals; ties keep the store's natural row order.
func (service *LeaderboardService) BuildForMonth(month string) ([]LeaderboardEntry, error) {
	if !ValidMonthCode(month) {
		return nil, ErrValidation
	}

	employees, err := service.employees.List()
	if err != nil {
		return nil, err
	}
	salaries, err := service.salaries.ListForMonth(month)
	if err != nil {
		return nil, err
	}

	return BuildLeaderboard(employees, salaries), nil
}

func BuildLeaderboard(employees []models.Employee, salaries []models.Salary) []LeaderboardEntry {
	handles := make(map[uint]string, len(employees))
	managers := make(map[uint]bool, len(employees))
	for _, employee := range employees {
		handles[employee.ID] = employee.Handle
		managers[employee.ID] = employee.IsManager
	}

	entries := make([]LeaderboardEntry, 0, len(salaries))
	for _, salary := range salaries {
		if managers[salary.EmployeeID] {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			EmployeeID: salary.EmployeeID,
			Handle:     handles[salary.EmployeeID],
			Total:      salary.Total,
			Paid:       salary.Paid,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total.GreaterThan(entries[j].Total)
	})
	for index := range entries {
		entries[index].Rank = index + 1
	}
	return entries
}
