package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kien091/movie-system/internal/api"
	"github.com/kien091/movie-system/internal/auth"
	"github.com/kien091/movie-system/internal/testutil"
)

func postJSON(t *testing.T, server *api.Server, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", target, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.Router().ServeHTTP(rr, req)
	return rr
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == "session_token" {
			return cookie
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	server, _, _ := testutil.SetupTestServer(t)

	passwordHash, _ := auth.HashPassword("password123")
	if _, err := server.Store().CreateUser("viewer@example.com", passwordHash); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("Valid credentials set a session cookie", func(t *testing.T) {
		rr := postJSON(t, server, "/login", map[string]string{
			"email": "viewer@example.com", "password": "password123",
		})
		if rr.Code != http.StatusOK {
			t.Fatalf("login returned status %d: %s", rr.Code, rr.Body.String())
		}

		cookie := sessionCookie(rr)
		if cookie == nil {
			t.Fatal("no session cookie was set")
		}
		if !cookie.HttpOnly {
			t.Error("session cookie must be HttpOnly")
		}
		if cookie.SameSite != http.SameSiteLaxMode {
			t.Error("session cookie must use SameSite=Lax")
		}

		// The response never leaks the password hash.
		if strings.Contains(rr.Body.String(), "password") {
			t.Errorf("response body leaks credential material: %s", rr.Body.String())
		}
	})

	t.Run("Wrong password and unknown email share one message", func(t *testing.T) {
		for _, payload := range []map[string]string{
			{"email": "viewer@example.com", "password": "wrongpassword"},
			{"email": "nobody@example.com", "password": "password123"},
		} {
			rr := postJSON(t, server, "/login", payload)
			if rr.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rr.Code)
			}
			if !strings.Contains(rr.Body.String(), "Email hoặc mật khẩu không đúng") {
				t.Errorf("unexpected error body: %s", rr.Body.String())
			}
			if sessionCookie(rr) != nil {
				t.Error("failed login must not set a session cookie")
			}
		}
	})

	t.Run("Malformed payload", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/login", strings.NewReader("not json"))
		rr := httptest.NewRecorder()
		server.Router().ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rr.Code)
		}
	})
}

func TestLogout(t *testing.T) {
	server, _, _ := testutil.SetupTestServer(t)
	cookie := testutil.GetAuthCookie(t, server, "viewer@example.com", "password123")

	req, _ := http.NewRequest("POST", "/logout", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	server.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("logout returned status %d", rr.Code)
	}
	expired := sessionCookie(rr)
	if expired == nil || expired.MaxAge != -1 {
		t.Error("logout must expire the session cookie")
	}

	// The server-side session is gone too.
	if _, err := server.Store().GetUserFromSession(cookie.Value); err == nil {
		t.Error("session still resolves after logout")
	}
}

func TestResetEndpoint(t *testing.T) {
	t.Run("Unknown account", func(t *testing.T) {
		server, _, fakeMailer := testutil.SetupTestServer(t)

		rr := postJSON(t, server, "/reset", map[string]string{"email": "nobody@example.com"})
		if rr.Code != http.StatusOK {
			t.Fatalf("reset returned status %d: %s", rr.Code, rr.Body.String())
		}

		var resp map[string]string
		json.Unmarshal(rr.Body.Bytes(), &resp)
		if resp["outcome"] != "account_not_found" {
			t.Errorf("outcome = %q, want account_not_found", resp["outcome"])
		}
		if fakeMailer.SentCount() != 0 {
			t.Errorf("mail was dispatched for an unknown account")
		}
	})

	t.Run("Known account", func(t *testing.T) {
		server, _, fakeMailer := testutil.SetupTestServer(t)
		passwordHash, _ := auth.HashPassword("oldpassword")
		if _, err := server.Store().CreateUser("viewer@example.com", passwordHash); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		rr := postJSON(t, server, "/reset", map[string]string{"email": "viewer@example.com"})
		if rr.Code != http.StatusOK {
			t.Fatalf("reset returned status %d: %s", rr.Code, rr.Body.String())
		}

		var resp map[string]string
		json.Unmarshal(rr.Body.Bytes(), &resp)
		if resp["outcome"] != "email_sent" {
			t.Errorf("outcome = %q, want email_sent", resp["outcome"])
		}
		if fakeMailer.SentCount() != 1 {
			t.Fatalf("expected exactly one mail, got %d", fakeMailer.SentCount())
		}
		if fakeMailer.Sent[0].Subject != "Bạn vừa yêu cầu đặt lại mật khẩu" {
			t.Errorf("unexpected subject: %q", fakeMailer.Sent[0].Subject)
		}
	})

	t.Run("Delivery failure is reported, not hidden", func(t *testing.T) {
		server, _, fakeMailer := testutil.SetupTestServer(t)
		fakeMailer.Err = errors.New("smtp unreachable")
		passwordHash, _ := auth.HashPassword("oldpassword")
		if _, err := server.Store().CreateUser("viewer@example.com", passwordHash); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		rr := postJSON(t, server, "/reset", map[string]string{"email": "viewer@example.com"})
		if rr.Code != http.StatusOK {
			t.Fatalf("reset returned status %d: %s", rr.Code, rr.Body.String())
		}

		var resp map[string]string
		json.Unmarshal(rr.Body.Bytes(), &resp)
		if resp["outcome"] != "delivery_failed" {
			t.Errorf("outcome = %q, want delivery_failed", resp["outcome"])
		}
	})
}
