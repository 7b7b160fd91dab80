package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestAbortWithValidationCarriesFieldAndCode(t *testing.T) {
	c, rec := newTestContext(t)

	abortWithValidation(c, newValidationError("provider_id", "invalid_id", "provider_id must be a valid id"))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "provider_id must be a valid id", body["error"])
	require.Equal(t, "provider_id", body["field"])
	require.Equal(t, "invalid_id", body["code"])
}

func TestAbortWithValidationPlainError(t *testing.T) {
	c, rec := newTestContext(t)

	abortWithValidation(c, errors.New("malformed body"))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "malformed body", body["error"])
	require.NotContains(t, body, "field")
}
