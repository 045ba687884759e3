package api

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sorokindm/crewtally/internal/db"
	"github.com/sorokindm/crewtally/internal/services"
	"gorm.io/gorm"
)

const (
	sessionCookieName  = "crewtally_session"
	contextEmployeeKey = "current_employee"
)

type Handler struct {
	repos        *db.Repositories
	secretKey    []byte
	cookieSecure bool
	location     *time.Location
	loginLimiter *attemptLimiter

	auth        *services.AuthService
	earnings    *services.EarningsService
	salaries    *services.SalaryService
	leaderboard *services.LeaderboardService
	ledger      *services.LedgerService
	importer    *services.ImportService
	payouts     *services.PayoutService
}

type credentialsInput struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

type resetPasswordInput struct {
	Handle string `json:"handle"`
}

type provisionEmployeeInput struct {
	Handle        string          `json:"handle"`
	IsManager     bool            `json:"is_manager"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

type recomputeInput struct {
	Month string `json:"month"`
}

type markPaidInput struct {
	PaymentHash string `json:"payment_hash"`
}

type payoutRequestInput struct {
	Address string `json:"address"`
}

type importTokenInput struct {
	TTLHours int `json:"ttl_hours"`
}

type importRowsInput struct {
	Rows []services.ImportRow `json:"rows"`
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.Local
	}

	repos := db.NewRepositories(database)
	return &Handler{
		repos:        repos,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		location:     location,
		loginLimiter: newAttemptLimiter(),
		auth:         services.NewAuthService(repos.Employees, repos.Sessions),
		earnings:     services.NewEarningsService(repos.Employees, repos.Transactions),
		salaries:     services.NewSalaryService(repos.Employees, repos.Transactions, repos.Salaries),
		leaderboard:  services.NewLeaderboardService(repos.Employees, repos.Salaries),
		ledger:       services.NewLedgerService(repos.Transactions),
		importer:     services.NewImportService(repos.Employees, repos.Transactions),
		payouts:      services.NewPayoutService(repos.PayoutRequests),
	}, nil
}
