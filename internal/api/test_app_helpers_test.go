package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sorokindm/crewtally/internal/db"
	"github.com/sorokindm/crewtally/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newCrewtallyTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "crewtally-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "test-secret-key", time.UTC, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createTestEmployeeAccount(t *testing.T, database *gorm.DB, handle string, password string, isManager bool, profitPercent string) models.Employee {
	t.Helper()

	passwordHash := ""
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		passwordHash = string(hashed)
	}

	employee := models.Employee{
		Handle:        handle,
		PasswordHash:  passwordHash,
		IsActive:      true,
		IsManager:     isManager,
		ProfitPercent: decimal.RequireFromString(profitPercent),
		CreatedAt:     time.Now().UTC(),
	}
	if err := database.Create(&employee).Error; err != nil {
		t.Fatalf("create employee %s: %v", handle, err)
	}
	return employee
}

func seedTestTransaction(t *testing.T, database *gorm.DB, employeeID uint, month string, casino string, deposit string, withdrawal string) {
	t.Helper()

	depositAmount := decimal.RequireFromString(deposit)
	withdrawalAmount := decimal.RequireFromString(withdrawal)
	date, err := time.Parse("2006-01-02", month+"-10")
	if err != nil {
		t.Fatalf("build transaction date: %v", err)
	}

	transaction := models.Transaction{
		EmployeeID: employeeID,
		Month:      month,
		Date:       date,
		Casino:     casino,
		Deposit:    depositAmount,
		Withdrawal: withdrawalAmount,
		Profit:     withdrawalAmount.Sub(depositAmount),
		CreatedAt:  time.Now().UTC(),
	}
	if err := database.Create(&transaction).Error; err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
}

func performJSONRequest(t *testing.T, app *fiber.App, method string, path string, sessionCookie string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if sessionCookie != "" {
		request.Header.Set("Cookie", sessionCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func loginAndExtractSessionCookie(t *testing.T, app *fiber.App, handle string, password string) string {
	t.Helper()

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"handle":   handle,
		"password": password,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("session cookie is missing in login response")
	return ""
}
