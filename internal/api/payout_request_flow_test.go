package api

import (
	"fmt"
	"net/http"
	"testing"
)

const testPayoutAddress = "0x52908400098527886E0F7030069857D2E4169EE7"

func TestPayoutRequestApprovalUpdatesEmployeeAddress(t *testing.T) {
	app, database := newCrewtallyTestApp(t)
	createTestEmployeeAccount(t, database, "@manager", "manager-pass", true, "0")
	alice := createTestEmployeeAccount(t, database, "@alice", "alice-pass", false, "40")

	aliceCookie := loginAndExtractSessionCookie(t, app, "@alice", "alice-pass")
	managerCookie := loginAndExtractSessionCookie(t, app, "@manager", "manager-pass")

	submitResponse := performJSONRequest(t, app, http.MethodPost, "/api/payout-requests", aliceCookie, map[string]string{
		"address": testPayoutAddress,
	})
	if submitResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected submit status 201, got %d", submitResponse.StatusCode)
	}
	submitBody := decodeJSONBody(t, submitResponse)
	request, ok := submitBody["request"].(map[string]any)
	if !ok {
		t.Fatalf("expected request object in submit response, got %v", submitBody)
	}
	requestID := uint(request["id"].(float64))

	duplicateResponse := performJSONRequest(t, app, http.MethodPost, "/api/payout-requests", aliceCookie, map[string]string{
		"address": testPayoutAddress,
	})
	if duplicateResponse.StatusCode != http.StatusConflict {
		t.Fatalf("expected second pending submit status 409, got %d", duplicateResponse.StatusCode)
	}
	duplicateResponse.Body.Close()

	approvePath := fmt.Sprintf("/api/payout-requests/%d/approve", requestID)
	approveResponse := performJSONRequest(t, app, http.MethodPost, approvePath, managerCookie, nil)
	if approveResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected approve status 200, got %d", approveResponse.StatusCode)
	}
	approveResponse.Body.Close()

	var storedAddress string
	if err := database.Table("employees").
		Select("payout_address").
		Where("id = ?", alice.ID).
		Scan(&storedAddress).Error; err != nil {
		t.Fatalf("load employee payout address: %v", err)
	}
	if storedAddress != testPayoutAddress {
		t.Fatalf("expected approved address to reach the employee, got %q", storedAddress)
	}

	repeatApprove := performJSONRequest(t, app, http.MethodPost, approvePath, managerCookie, nil)
	if repeatApprove.StatusCode != http.StatusConflict {
		t.Fatalf("expected repeated approve status 409, got %d", repeatApprove.StatusCode)
	}
	repeatApprove.Body.Close()
}

func TestPayoutRequestRejectsMalformedAddress(t *testing.T) {
	app, database := newCrewtallyTestApp(t)
	createTestEmployeeAccount(t, database, "@alice", "alice-pass", false, "40")

	aliceCookie := loginAndExtractSessionCookie(t, app, "@alice", "alice-pass")

	response := performJSONRequest(t, app, http.MethodPost, "/api/payout-requests", aliceCookie, map[string]string{
		"address": "not-an-address",
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected malformed address status 400, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestPayoutRequestReviewRequiresManager(t *testing.T) {
	app, database := newCrewtallyTestApp(t)
	createTestEmployeeAccount(t, database, "@alice", "alice-pass", false, "40")

	aliceCookie := loginAndExtractSessionCookie(t, app, "@alice", "alice-pass")

	submitBody := decodeJSONBody(t, performJSONRequest(t, app, http.MethodPost, "/api/payout-requests", aliceCookie, map[string]string{
		"address": testPayoutAddress,
	}))
	request := submitBody["request"].(map[string]any)
	requestID := uint(request["id"].(float64))

	rejectPath := fmt.Sprintf("/api/payout-requests/%d/reject", requestID)
	response := performJSONRequest(t, app, http.MethodPost, rejectPath, aliceCookie, nil)
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected non-manager review status 403, got %d", response.StatusCode)
	}
	response.Body.Close()
}
