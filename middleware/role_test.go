package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blissful-abodes/models"
	"blissful-abodes/services"
	"blissful-abodes/stores"
)

func TestAuthorizeExactRoleMatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		session  *models.Session
		required string
		want     bool
	}{
		{"admin on admin", &models.Session{Role: models.RoleAdmin}, models.RoleAdmin, true},
		{"staff on admin", &models.Session{Role: models.RoleStaff}, models.RoleAdmin, false},
		{"admin on staff, no hierarchy", &models.Session{Role: models.RoleAdmin}, models.RoleStaff, false},
		{"staff on staff", &models.Session{Role: models.RoleStaff}, models.RoleStaff, true},
		{"no session on staff", nil, models.RoleStaff, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.session != nil {
				c.Set(sessionContextKey, tc.session)
			}
			assert.Equal(t, tc.want, Authorize(c, tc.required))
		})
	}
}

func newGatedRouter(t *testing.T) (*gin.Engine, *services.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := services.NewSessionService(stores.NewMemorySessionStore(), time.Hour)

	r := gin.New()
	r.Use(LoadSession(sessions))
	r.GET("/staff", RequireRole(sessions, models.RoleStaff, "Staff access only"), func(c *gin.Context) {
		c.String(http.StatusOK, "staff panel")
	})
	r.GET("/mine", RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r, sessions
}

func establish(t *testing.T, sessions *services.SessionService, role string) string {
	t.Helper()
	session, err := sessions.Establish(context.Background(), &models.User{ID: 1, Name: "A", Email: "a@x.com", Role: role})
	require.NoError(t, err)
	return session.Token
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoleGate(t *testing.T) {
	r, sessions := newGatedRouter(t)

	// Anonymous requests are sent to login without disclosing the resource.
	w := doGet(r, "/staff", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// Wrong role bounces to the dashboard.
	w = doGet(r, "/staff", establish(t, sessions, models.RoleAdmin))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	// Matching role passes through.
	w = doGet(r, "/staff", establish(t, sessions, models.RoleStaff))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "staff panel", w.Body.String())
}

func TestRequireRoleDenialSetsFlash(t *testing.T) {
	r, sessions := newGatedRouter(t)
	token := establish(t, sessions, models.RoleGuest)

	w := doGet(r, "/staff", token)
	assert.Equal(t, http.StatusFound, w.Code)

	kind, message := sessions.PopFlash(context.Background(), token)
	assert.Equal(t, "error", kind)
	assert.Equal(t, "Staff access only", message)
}

func TestRequireAuth(t *testing.T) {
	r, sessions := newGatedRouter(t)

	w := doGet(r, "/mine", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = doGet(r, "/mine", establish(t, sessions, models.RoleGuest))
	assert.Equal(t, http.StatusOK, w.Code)

	// A garbage token behaves like no session at all.
	w = doGet(r, "/mine", "not-a-token")
	assert.Equal(t, http.StatusFound, w.Code)
}
