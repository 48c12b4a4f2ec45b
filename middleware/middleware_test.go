package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelops/constants"
	"hotelops/errors"
	"hotelops/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(SessionMiddleware(), RequestLogger(zap.NewNop()), ErrorHandler())
	r.GET("/x", handlers...)
	return r
}

func ok(c *gin.Context) { c.Status(http.StatusNoContent) }

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(AuthMiddleware("s3cret", constants.RoleManager), ok)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	staff, err := services.SignStaffToken(1, constants.RoleHousekeeping, "s3cret")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+staff)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	manager, err := services.SignStaffToken(2, constants.RoleManager, "s3cret")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+manager)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthMiddlewareDisabled(t *testing.T) {
	r := newRouter(AuthMiddleware(""), ok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestErrorHandler(t *testing.T) {
	r := newRouter(func(c *gin.Context) {
		_ = c.Error(errors.ErrRoomNotFound)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ROOM_NOT_FOUND")
}

func TestSessionMiddleware(t *testing.T) {
	var seen string
	r := newRouter(func(c *gin.Context) {
		seen = c.GetString("sessionId")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"))
	assert.Equal(t, w.Header().Get("X-Session-ID"), seen)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Session-ID", "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Session-ID"))
	assert.Equal(t, "abc", seen)
}
