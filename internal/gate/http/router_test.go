package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aegislegal/demogate/internal/gate/service"
	"github.com/aegislegal/demogate/internal/gate/store"
	"github.com/aegislegal/demogate/internal/gate/store/drivers/sqlite"
	"github.com/aegislegal/demogate/pkg/cryptox"
	"github.com/aegislegal/demogate/pkg/gatesdk"
	"github.com/stretchr/testify/require"
)

const testAdminPassword = "test-operator-password"

// newTestRouter wires a full router against an in-memory store.
func newTestRouter(t *testing.T) (*Router, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hash, err := cryptox.HashPassword(testAdminPassword)
	require.NoError(t, err)

	router := NewRouter("test", false, st, slog.Default())
	router.AuthService = &service.AuthService{Store: st}
	router.AdminService = &service.AdminService{
		PasswordHash: hash,
		TokenSecret:  []byte("test-secret"),
		Issuer:       "demogate-test",
	}
	router.InvitationService = &service.InvitationService{Store: st, BaseURL: "https://demo.example"}
	router.ReportService = &service.ReportService{Store: st}
	router.ApplyRoutes()

	return router, st
}

func doJSON(t *testing.T, router *Router, method, path string, body any, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(req)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func adminToken(t *testing.T, router *Router) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login",
		gatesdk.AdminLoginRequest{Password: testAdminPassword}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp gatesdk.AdminLoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Positive(t, resp.ExpiresIn)
	return resp.Token
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func createInvite(t *testing.T, router *Router, email, name string) gatesdk.InvitedUserPayload {
	t.Helper()

	token := adminToken(t, router)
	rec := doJSON(t, router, http.MethodPost, "/api/admin/invite",
		gatesdk.InviteRequest{Email: email, Name: name}, withBearer(token))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp gatesdk.InviteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.User.InviteCode)
	require.Contains(t, resp.User.InviteURL, "/login?code="+resp.User.InviteCode)
	return resp.User
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	t.Fatal("authToken cookie not set")
	return nil
}

func TestLoginFlow(t *testing.T) {
	router, _ := newTestRouter(t)
	invited := createInvite(t, router, "tom@example.com", "Tom")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		gatesdk.LoginRequest{InviteCode: invited.InviteCode}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp gatesdk.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "tom@example.com", resp.User.Email)

	cookie := sessionCookie(t, rec)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, "/", cookie.Path)

	// The cookie admits the holder to guarded content.
	rec = doJSON(t, router, http.MethodGet, "/api/demo/contradictions", nil, func(r *http.Request) {
		r.AddCookie(cookie)
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Session check reflects the invited identity.
	rec = doJSON(t, router, http.MethodGet, "/api/auth/session", nil, func(r *http.Request) {
		r.AddCookie(cookie)
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var sess gatesdk.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	require.True(t, sess.Authenticated)
	require.Equal(t, resp.User.ID, sess.User.ID)
}

func TestLoginRejectsBadCode(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		gatesdk.LoginRequest{InviteCode: "deadbeefdeadbeefdeadbeefdeadbeef"}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp gatesdk.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "invalid invite code", resp.Error)
}

func TestGuardRejectsMissingAndBogusCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	// No credential at all.
	rec := doJSON(t, router, http.MethodGet, "/api/demo/report", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp gatesdk.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "authentication required", resp.Error)
	require.Equal(t, "/login", resp.Redirect)

	// A bogus bearer token gets the identical body.
	rec = doJSON(t, router, http.MethodGet, "/api/demo/report", nil, withBearer("bogus"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"authentication required","redirect":"/login"}`, rec.Body.String())
}

func TestGuardClearsRejectedCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/demo/report", nil, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-token"})
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := sessionCookie(t, rec)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge)
}

func TestGuardCookieTakesPrecedenceOverBearer(t *testing.T) {
	router, _ := newTestRouter(t)
	invited := createInvite(t, router, "tom@example.com", "Tom")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		gatesdk.LoginRequest{InviteCode: invited.InviteCode}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	valid := sessionCookie(t, rec)

	// A stale cookie must lose to nothing: even with a valid bearer token,
	// the cookie is consulted first and its rejection clears it.
	rec = doJSON(t, router, http.MethodGet, "/api/demo/report", nil, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-token"})
		r.Header.Set("Authorization", "Bearer "+valid.Value)
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// The valid token in the cookie wins regardless of the header.
	rec = doJSON(t, router, http.MethodGet, "/api/demo/report", nil, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: valid.Value})
		r.Header.Set("Authorization", "Bearer garbage")
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutClearsCookieAndKillsSession(t *testing.T) {
	router, _ := newTestRouter(t)
	invited := createInvite(t, router, "tom@example.com", "Tom")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		gatesdk.LoginRequest{InviteCode: invited.InviteCode}, nil)
	cookie := sessionCookie(t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/logout", nil, func(r *http.Request) {
		r.AddCookie(cookie)
	})
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := sessionCookie(t, rec)
	require.Empty(t, cleared.Value)

	// The token is dead from here on.
	rec = doJSON(t, router, http.MethodGet, "/api/auth/session", nil, func(r *http.Request) {
		r.AddCookie(cookie)
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Logging out again still succeeds.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/logout", nil, func(r *http.Request) {
		r.AddCookie(cookie)
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminEndpointsRejectInvitedSessions(t *testing.T) {
	router, _ := newTestRouter(t)
	invited := createInvite(t, router, "tom@example.com", "Tom")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		gatesdk.LoginRequest{InviteCode: invited.InviteCode}, nil)
	cookie := sessionCookie(t, rec)

	for _, probe := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/admin/invite"},
		{http.MethodGet, "/api/admin/activity"},
		{http.MethodPost, "/api/admin/users/" + invited.ID + "/deactivate"},
	} {
		rec := doJSON(t, router, probe.method, probe.path, nil, func(r *http.Request) {
			r.AddCookie(cookie)
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", probe.method, probe.path)
	}
}

func TestAdminTokenAdmitsGuardedContent(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t, router)

	// The operator can view guarded demo content too.
	rec := doJSON(t, router, http.MethodGet, "/api/demo/timeline", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/auth/session", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var sess gatesdk.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	require.Equal(t, "admin", sess.User.ID)
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login",
		gatesdk.AdminLoginRequest{Password: "wrong"}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeactivateFlow(t *testing.T) {
	router, _ := newTestRouter(t)
	invited := createInvite(t, router, "mae@example.com", "Mae")
	token := adminToken(t, router)

	// The invitee logs in first.
	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		gatesdk.LoginRequest{InviteCode: invited.InviteCode}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/admin/users/"+invited.ID+"/deactivate", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	// The live session dies on the next request.
	rec = doJSON(t, router, http.MethodGet, "/api/demo/report", nil, func(r *http.Request) {
		r.AddCookie(cookie)
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// The invite code is dead too.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/login",
		gatesdk.LoginRequest{InviteCode: invited.InviteCode}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown users 404.
	rec = doJSON(t, router, http.MethodPost, "/api/admin/users/01K00000000000000000000000/deactivate", nil, withBearer(token))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActivityEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	invited := createInvite(t, router, "tom@example.com", "Tom")
	createInvite(t, router, "mae@example.com", "Mae")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		gatesdk.LoginRequest{InviteCode: invited.InviteCode}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	token := adminToken(t, router)
	rec = doJSON(t, router, http.MethodGet, "/api/admin/activity", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var activity gatesdk.ActivityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activity))
	require.Equal(t, 2, activity.TotalInvited)
	require.Equal(t, 1, activity.TotalAccessed)
	require.Len(t, activity.Users, 2)
	require.Equal(t, "Tom", activity.Users[0].Name, "logged-in user sorts first")
	require.True(t, activity.Users[0].HasLoggedIn)
	require.False(t, activity.Users[1].HasLoggedIn)
	require.NotEmpty(t, activity.RecentActivity)
	require.Equal(t, invited.ID, activity.RecentActivity[0].UserID)
}

func TestHealthProbes(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/livez", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health gatesdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)

	rec = doJSON(t, router, http.MethodGet, "/readyz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}

func TestDemoContentPayloads(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/demo/contradictions", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var contradictions []gatesdk.Contradiction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contradictions))
	require.NotEmpty(t, contradictions)
	require.NotEmpty(t, contradictions[0].Statement)

	rec = doJSON(t, router, http.MethodGet, "/api/demo/report", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var report gatesdk.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Contains(t, report.HTML, "Case Report")
}
