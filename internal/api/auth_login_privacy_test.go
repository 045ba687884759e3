package api

import (
	"net/http"
	"testing"
)

// A wrong password and an unknown handle must produce the same answer so the
// login endpoint never confirms which handles exist.
func TestLoginFailureDoesNotRevealAccountExistence(t *testing.T) {
	app, database := newCrewtallyTestApp(t)
	createTestEmployeeAccount(t, database, "@alice", "s3cret-pass", false, "40")

	wrongPassword := performJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"handle":   "@alice",
		"password": "not-the-password",
	})
	wrongPasswordBody := decodeJSONBody(t, wrongPassword)

	unknownHandle := performJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"handle":   "@nobody",
		"password": "not-the-password",
	})
	unknownHandleBody := decodeJSONBody(t, unknownHandle)

	if wrongPassword.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected wrong password status 401, got %d", wrongPassword.StatusCode)
	}
	if unknownHandle.StatusCode != wrongPassword.StatusCode {
		t.Fatalf("expected identical statuses, got %d and %d", wrongPassword.StatusCode, unknownHandle.StatusCode)
	}
	if wrongPasswordBody["error"] != unknownHandleBody["error"] {
		t.Fatalf("expected identical error bodies, got %v and %v", wrongPasswordBody["error"], unknownHandleBody["error"])
	}
}

func TestLoginBeforeRegistrationIsRejected(t *testing.T) {
	app, database := newCrewtallyTestApp(t)
	createTestEmployeeAccount(t, database, "@fresh", "", false, "30")

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"handle":   "@fresh",
		"password": "anything-at-all",
	})
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected unregistered login status 403, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["error"] != "registration required" {
		t.Fatalf("expected registration required error, got %v", body["error"])
	}
}

func TestLoginDeactivatedAccountIsRejected(t *testing.T) {
	app, database := newCrewtallyTestApp(t)
	employee := createTestEmployeeAccount(t, database, "@gone", "s3cret-pass", false, "40")
	if err := database.Model(&employee).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate employee: %v", err)
	}

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"handle":   "@gone",
		"password": "s3cret-pass",
	})
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected deactivated login status 403, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["error"] != "account deactivated" {
		t.Fatalf("expected account deactivated error, got %v", body["error"])
	}
}
