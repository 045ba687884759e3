package api

import (
	"net/http"
	"testing"
)

func TestResetPasswordRevokesExistingSessions(t *testing.T) {
	app, database := newCrewtallyTestApp(t)
	createTestEmployeeAccount(t, database, "@manager", "manager-pass", true, "0")
	createTestEmployeeAccount(t, database, "@alice", "old-password", false, "40")

	aliceCookie := loginAndExtractSessionCookie(t, app, "@alice", "old-password")
	managerCookie := loginAndExtractSessionCookie(t, app, "@manager", "manager-pass")

	resetResponse := performJSONRequest(t, app, http.MethodPost, "/api/employees/reset-password", managerCookie, map[string]string{
		"handle": "alice",
	})
	if resetResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected reset status 200, got %d", resetResponse.StatusCode)
	}
	resetBody := decodeJSONBody(t, resetResponse)
	newPassword, ok := resetBody["password"].(string)
	if !ok || newPassword == "" {
		t.Fatalf("expected generated password in reset response, got %v", resetBody)
	}

	staleResponse := performJSONRequest(t, app, http.MethodGet, "/api/auth/me", aliceCookie, nil)
	if staleResponse.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected pre-reset session to be revoked, got %d", staleResponse.StatusCode)
	}
	staleResponse.Body.Close()

	oldPasswordLogin := performJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"handle":   "@alice",
		"password": "old-password",
	})
	if oldPasswordLogin.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected old password login to fail with 401, got %d", oldPasswordLogin.StatusCode)
	}
	oldPasswordLogin.Body.Close()

	loginAndExtractSessionCookie(t, app, "@alice", newPassword)
}

func TestResetPasswordRequiresManager(t *testing.T) {
	app, database := newCrewtallyTestApp(t)
	createTestEmployeeAccount(t, database, "@alice", "alice-pass", false, "40")
	createTestEmployeeAccount(t, database, "@bob", "bob-pass", false, "40")

	aliceCookie := loginAndExtractSessionCookie(t, app, "@alice", "alice-pass")

	response := performJSONRequest(t, app, http.MethodPost, "/api/employees/reset-password", aliceCookie, map[string]string{
		"handle": "bob",
	})
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected non-manager reset to answer 403, got %d", response.StatusCode)
	}
	response.Body.Close()
}
