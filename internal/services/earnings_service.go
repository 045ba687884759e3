package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

// Earnings bonus policy: a flat bonus once monthly gross profit reaches the
// threshold.
var (
	bonusThreshold = decimal.NewFromInt(2000)
	bonusAmount    = decimal.NewFromInt(200)
	percentDivisor = decimal.NewFromInt(100)
)

type EarningsEmployeeReader interface {
	FindByID(employeeID uint) (models.Employee, error)
}

type EarningsTransactionReader interface {
	FetchForEmployeeMonth(employeeID uint, month string) ([]models.Transaction, error)
}

type EarningsService struct {
	employees    EarningsEmployeeReader
	transactions EarningsTransactionReader
}

func NewEarningsService(employees EarningsEmployeeReader, transactions EarningsTransactionReader) *EarningsService {
	return &EarningsService{
		employees:    employees,
		transactions: transactions,
	}
}

type CasinoBreakdown struct {
	Casino           string          `json:"casino"`
	Profit           decimal.Decimal `json:"profit"`
	Deposits         decimal.Decimal `json:"deposits"`
	Withdrawals      decimal.Decimal `json:"withdrawals"`
	TransactionCount int             `json:"transaction_count"`
}

type EarningsSummary struct {
	EmployeeID       uint              `json:"employee_id"`
	Month            string            `json:"month"`
	GrossProfit      decimal.Decimal   `json:"gross_profit"`
	TotalDeposits    decimal.Decimal   `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal   `json:"total_withdrawals"`
	Base             decimal.Decimal   `json:"base"`
	Bonus            decimal.Decimal   `json:"bonus"`
	Total            decimal.Decimal   `json:"total"`
	WorkDays         int               `json:"work_days"`
	TransactionCount int               `json:"transaction_count"`
	TopCasino        string            `json:"top_casino"`
	Casinos          []CasinoBreakdown `json:"casinos"`
}

// ComputeMonthlyEarnings aggregates the employee's ledger rows for one month.
// The computation is pure over the fetched rows, so repeated calls against an
// unchanged ledger yield identical summaries. An empty month yields a
// zero-valued summary, not an error.
func (service *EarningsService) ComputeMonthlyEarnings(employeeID uint, month string) (EarningsSummary, error) {
	if !ValidMonthCode(month) {
		return EarningsSummary{}, ErrValidation
	}

	employee, err := service.employees.FindByID(employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return EarningsSummary{}, ErrNotFound
	}
	if err != nil {
		return EarningsSummary{}, err
	}

	transactions, err := service.transactions.FetchForEmployeeMonth(employee.ID, month)
	if err != nil {
		return EarningsSummary{}, err
	}

	return BuildEarningsSummary(employee, month, transactions), nil
}

// BuildEarningsSummary folds ledger rows into the monthly summary. Casino
// order follows first appearance in the input, which matches the store's
// natural order; top-casino ties resolve to the earlier casino.
func BuildEarningsSummary(employee models.Employee, month string, transactions []models.Transaction) EarningsSummary {
	summary := EarningsSummary{
		EmployeeID:       employee.ID,
		Month:            month,
		TransactionCount: len(transactions),
		Casinos:          []CasinoBreakdown{},
	}

	casinoIndex := make(map[string]int)
	days := make(map[string]struct{})

	for _, transaction := range transactions {
		summary.GrossProfit = summary.GrossProfit.Add(transaction.Profit)
		summary.TotalDeposits = summary.TotalDeposits.Add(transaction.Deposit)
		summary.TotalWithdrawals = summary.TotalWithdrawals.Add(transaction.Withdrawal)
		days[transaction.Date.Format("2006-01-02")] = struct{}{}

		index, seen := casinoIndex[transaction.Casino]
		if !seen {
			index = len(summary.Casinos)
			casinoIndex[transaction.Casino] = index
			summary.Casinos = append(summary.Casinos, CasinoBreakdown{Casino: transaction.Casino})
		}
		breakdown := &summary.Casinos[index]
		breakdown.Profit = breakdown.Profit.Add(transaction.Profit)
		breakdown.Deposits = breakdown.Deposits.Add(transaction.Deposit)
		breakdown.Withdrawals = breakdown.Withdrawals.Add(transaction.Withdrawal)
		breakdown.TransactionCount++
	}

	summary.WorkDays = len(days)
	summary.TopCasino = topCasinoByProfit(summary.Casinos)
	summary.Base = baseSalary(summary.GrossProfit, employee.ProfitPercent)
	summary.Bonus = profitBonus(summary.GrossProfit)
	summary.Total = summary.Base.Add(summary.Bonus)
	return summary
}

func topCasinoByProfit(casinos []CasinoBreakdown) string {
	top := ""
	var best decimal.Decimal
	for index, breakdown := range casinos {
		if index == 0 || breakdown.Profit.GreaterThan(best) {
			top = breakdown.Casino
			best = breakdown.Profit
		}
	}
	return top
}

// baseSalary is the employee's profit share. Negative months pay no base
// salary; the gross profit itself stays signed for reporting.
func baseSalary(grossProfit decimal.Decimal, percent decimal.Decimal) decimal.Decimal {
	if grossProfit.Sign() <= 0 || percent.Sign() <= 0 {
		return decimal.Zero
	}
	return grossProfit.Mul(percent).Div(percentDivisor).Round(2)
}

func profitBonus(grossProfit decimal.Decimal) decimal.Decimal {
	if grossProfit.GreaterThanOrEqual(bonusThreshold) {
		return bonusAmount
	}
	return decimal.Zero
}
