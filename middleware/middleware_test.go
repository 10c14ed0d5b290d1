package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-reservation/models"
	"hotel-reservation/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newEngine(auth *services.AuthService, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(log))
	protected := r.Group("", RequireSession(auth))
	protected.GET("/desk", RequireRole(models.RoleReceptionist), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.String(http.StatusOK, user.Name)
	})
	return r
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for header, want := range map[string]string{
		"Bearer abc":  "abc",
		"bearer  xyz": "xyz",
		"Basic abc":   "",
		"":            "",
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", header)
		assert.Equal(t, want, BearerToken(c), header)
	}
}

func TestRequireSessionAndRole(t *testing.T) {
	auth := services.NewAuthService(services.NewMemorySessionStore(), time.Hour, zap.NewNop())
	r := newEngine(auth, zap.NewNop())
	ctx := context.Background()

	desk, err := auth.Login(ctx, "maria@receptionist", "pw")
	require.NoError(t, err)
	guest, err := auth.Login(ctx, "juan@guest", "pw")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer " + guest.Token, http.StatusForbidden},
		{"receptionist", "Bearer " + desk.Token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/desk", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	auth := services.NewAuthService(services.NewMemorySessionStore(), time.Hour, zap.NewNop())
	r := newEngine(auth, zap.New(core))

	session, err := auth.Login(context.Background(), "maria@receptionist", "pw")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/desk", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	r.ServeHTTP(httptest.NewRecorder(), req)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/desk", nil))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "2", fields["user_id"])
	assert.Equal(t, models.RoleReceptionist, fields["role"])
	assert.EqualValues(t, http.StatusOK, fields["status"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.NotContains(t, entries[1].ContextMap(), "user_id")
}
