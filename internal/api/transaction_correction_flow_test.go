package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/sorokindm/crewtally/internal/models"
)

func TestTransactionCorrectionAmendsLedgerAndEarnings(t *testing.T) {
	app, database := newCrewtallyTestApp(t)
	createTestEmployeeAccount(t, database, "@manager", "manager-pass", true, "0")
	alice := createTestEmployeeAccount(t, database, "@alice", "alice-pass", false, "40")

	seedTestTransaction(t, database, alice.ID, "2026-07", "lucky7", "100", "150")

	var transaction models.Transaction
	if err := database.Where("employee_id = ?", alice.ID).First(&transaction).Error; err != nil {
		t.Fatalf("load seeded transaction: %v", err)
	}

	managerCookie := loginAndExtractSessionCookie(t, app, "@manager", "manager-pass")

	correctPath := fmt.Sprintf("/api/transactions/%d/correct", transaction.ID)
	correctResponse := performJSONRequest(t, app, http.MethodPost, correctPath, managerCookie, map[string]any{
		"deposit":    "100",
		"withdrawal": "250",
		"reason":     "cashier typo",
	})
	if correctResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected correct status 200, got %d", correctResponse.StatusCode)
	}
	correctResponse.Body.Close()

	historyPath := fmt.Sprintf("/api/transactions/%d/corrections", transaction.ID)
	historyBody := decodeJSONBody(t, performJSONRequest(t, app, http.MethodGet, historyPath, managerCookie, nil))
	corrections, ok := historyBody["corrections"].([]any)
	if !ok || len(corrections) != 1 {
		t.Fatalf("expected one correction in history, got %v", historyBody)
	}

	earningsPath := fmt.Sprintf("/api/employees/%d/earnings?month=2026-07", alice.ID)
	earningsBody := decodeJSONBody(t, performJSONRequest(t, app, http.MethodGet, earningsPath, managerCookie, nil))
	earnings, ok := earningsBody["earnings"].(map[string]any)
	if !ok {
		t.Fatalf("expected earnings object, got %v", earningsBody)
	}
	if earnings["gross_profit"] != "150" {
		t.Fatalf("expected corrected gross profit 150, got %v", earnings["gross_profit"])
	}
}

func TestTransactionCorrectionRequiresReason(t *testing.T) {
	app, database := newCrewtallyTestApp(t)
	createTestEmployeeAccount(t, database, "@manager", "manager-pass", true, "0")
	alice := createTestEmployeeAccount(t, database, "@alice", "alice-pass", false, "40")

	seedTestTransaction(t, database, alice.ID, "2026-07", "lucky7", "100", "150")

	var transaction models.Transaction
	if err := database.Where("employee_id = ?", alice.ID).First(&transaction).Error; err != nil {
		t.Fatalf("load seeded transaction: %v", err)
	}

	managerCookie := loginAndExtractSessionCookie(t, app, "@manager", "manager-pass")

	correctPath := fmt.Sprintf("/api/transactions/%d/correct", transaction.ID)
	response := performJSONRequest(t, app, http.MethodPost, correctPath, managerCookie, map[string]any{
		"deposit":    "100",
		"withdrawal": "250",
		"reason":     "   ",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected missing reason status 400, got %d", response.StatusCode)
	}
	response.Body.Close()
}
