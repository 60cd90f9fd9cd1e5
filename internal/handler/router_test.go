package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/domain"
	"github.com/campaignforge/campaignforge-go/internal/handler"
	"github.com/campaignforge/campaignforge-go/internal/infra/memstore"
	"github.com/campaignforge/campaignforge-go/internal/infra/observability"
	"github.com/campaignforge/campaignforge-go/internal/infra/session"
	"github.com/campaignforge/campaignforge-go/internal/service"

	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	store := memstore.New(domain.DefaultLeadThresholds())
	sessions := session.NewManager("test-secret", time.Hour)
	metrics := observability.NewMetrics()
	logger := zap.NewNop()

	authSvc := service.NewAuthService(store, sessions, metrics, logger)
	marketingSvc := service.NewMarketingService(store, metrics, logger)

	return handler.NewRouter(marketingSvc, authSvc, metrics, []string{"http://localhost:5173"}, logger)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// login authenticates with the seeded demo user and returns the session cookie.
func login(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"username":"founder","password":"password"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("expected session cookie in login response")
	return nil
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	router := newTestRouter()

	paths := []string{"/api/campaigns", "/api/contacts", "/api/tasks", "/api/activities", "/api/dashboard/metrics", "/api/auth/me"}
	for _, path := range paths {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401 without a session, got %d", path, rec.Code)
		}
	}
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"secret-pass","name":"Alice","email":"alice@example.com"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected session cookie after register")
	}

	var resp domain.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if resp.User == nil || resp.User.Username != "alice" {
		t.Fatalf("unexpected register payload: %+v", resp)
	}

	// me works while the session lives
	rec = doJSON(t, router, http.MethodGet, "/api/auth/me", "", []*http.Cookie{cookie})
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", rec.Code)
	}

	// logout kills it
	rec = doJSON(t, router, http.MethodPost, "/api/auth/logout", "", []*http.Cookie{cookie})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/auth/me", "", []*http.Cookie{cookie})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("me after logout: expected 401, got %d", rec.Code)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	router := newTestRouter()

	body := `{"username":"bob","password":"secret-pass","name":"Bob","email":"bob@example.com"}`
	if rec := doJSON(t, router, http.MethodPost, "/api/auth/register", body, nil); rec.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", rec.Code)
	}
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", body, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("second register: expected 409, got %d", rec.Code)
	}
}

func TestLogin_BadPassword(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"username":"founder","password":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestCampaignCRUD(t *testing.T) {
	router := newTestRouter()
	cookie := login(t, router)
	auth := []*http.Cookie{cookie}

	// create
	rec := doJSON(t, router, http.MethodPost, "/api/campaigns",
		`{"name":"Webinar Push","type":"email"}`, auth)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created domain.Campaign
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode created campaign: %v", err)
	}
	if created.Status != "draft" {
		t.Errorf("expected default status draft, got %q", created.Status)
	}

	// get
	rec = doJSON(t, router, http.MethodGet, "/api/campaigns/"+created.ID, "", auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	// patch
	rec = doJSON(t, router, http.MethodPatch, "/api/campaigns/"+created.ID,
		`{"status":"active"}`, auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated domain.Campaign
	json.NewDecoder(rec.Body).Decode(&updated)
	if updated.Status != "active" {
		t.Errorf("expected status active after patch, got %q", updated.Status)
	}
	if updated.Name != "Webinar Push" {
		t.Errorf("expected name to survive partial update, got %q", updated.Name)
	}

	// invalid enum
	rec = doJSON(t, router, http.MethodPatch, "/api/campaigns/"+created.ID,
		`{"type":"billboard"}`, auth)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid type: expected 400, got %d", rec.Code)
	}

	// delete
	rec = doJSON(t, router, http.MethodDelete, "/api/campaigns/"+created.ID, "", auth)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}

	// delete again -> 404
	rec = doJSON(t, router, http.MethodDelete, "/api/campaigns/"+created.ID, "", auth)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", rec.Code)
	}

	// get after delete -> 404
	rec = doJSON(t, router, http.MethodGet, "/api/campaigns/"+created.ID, "", auth)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	router := newTestRouter()

	// alice creates a campaign
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"secret-pass","name":"Alice","email":"alice@example.com"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register alice: %d", rec.Code)
	}
	var aliceCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			aliceCookie = c
		}
	}

	rec = doJSON(t, router, http.MethodPost, "/api/campaigns",
		`{"name":"Alice Only","type":"email"}`, []*http.Cookie{aliceCookie})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create campaign: %d", rec.Code)
	}
	var campaign domain.Campaign
	json.NewDecoder(rec.Body).Decode(&campaign)

	// bob can't see it
	rec = doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"username":"bob","password":"secret-pass","name":"Bob","email":"bob@example.com"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register bob: %d", rec.Code)
	}
	var bobCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			bobCookie = c
		}
	}

	rec = doJSON(t, router, http.MethodGet, "/api/campaigns/"+campaign.ID, "", []*http.Cookie{bobCookie})
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign get: expected 404, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodDelete, "/api/campaigns/"+campaign.ID, "", []*http.Cookie{bobCookie})
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign delete: expected 404, got %d", rec.Code)
	}
}

func TestDashboardMetricsEndpoint(t *testing.T) {
	router := newTestRouter()
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/dashboard/metrics", "", []*http.Cookie{cookie})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var m domain.DashboardMetrics
	if err := json.NewDecoder(rec.Body).Decode(&m); err != nil {
		t.Fatalf("decode metrics: %v", err)
	}

	// Seeded workspace: 2 active campaigns, 2 contacts both hot.
	if m.ActiveCampaigns != 2 {
		t.Errorf("expected 2 active campaigns, got %d", m.ActiveCampaigns)
	}
	if m.TotalLeads != 2 {
		t.Errorf("expected 2 total leads, got %d", m.TotalLeads)
	}
	if m.LeadScores.Hot != 2 {
		t.Errorf("expected 2 hot leads, got %+v", m.LeadScores)
	}
	if !strings.HasSuffix(m.ConversionRate, "%") || !strings.HasSuffix(m.ROI, "%") {
		t.Errorf("expected percentage strings, got %q and %q", m.ConversionRate, m.ROI)
	}
}

func TestActivitiesEndpoint_Limit(t *testing.T) {
	router := newTestRouter()
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/activities?limit=2", "", []*http.Cookie{cookie})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var activities []domain.Activity
	if err := json.NewDecoder(rec.Body).Decode(&activities); err != nil {
		t.Fatalf("decode activities: %v", err)
	}
	if len(activities) != 2 {
		t.Errorf("expected 2 activities with limit=2, got %d", len(activities))
	}
}

func TestInvalidBody(t *testing.T) {
	router := newTestRouter()
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/campaigns", `{not json`, []*http.Cookie{cookie})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestPing(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
