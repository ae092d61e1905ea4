package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping() error { return s.err }

func setupSystemRouter(p Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewSystemHandler(p).RegisterRoutes(engine.Group(""))
	return engine
}

func TestSystemHandler_Health_OK(t *testing.T) {
	engine := setupSystemRouter(stubPinger{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
}

func TestSystemHandler_Health_DatabaseDown(t *testing.T) {
	engine := setupSystemRouter(stubPinger{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
	assert.Contains(t, w.Body.String(), `"database":"error"`)
}
