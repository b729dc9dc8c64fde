package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hireassist/backend/internal/errors"
)

func performError(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleErrorGin(c, err, nil)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandleErrorGin(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		rec, body := performError(t, apperrors.Wrap(apperrors.ErrNotFound, "user not found"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", body.Error)
	})

	t.Run("invalid input maps to 422 with details", func(t *testing.T) {
		rec, body := performError(t, apperrors.Wrap(apperrors.ErrInvalidInput, "fullName: too short"))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "invalid_input", body.Error)
		assert.Contains(t, body.Message, "fullName")
	})

	t.Run("all unauthorized errors render the same body", func(t *testing.T) {
		reasons := map[string]error{
			"expired":   apperrors.Wrap(apperrors.ErrUnauthorized, "token expired"),
			"malformed": apperrors.Wrap(apperrors.ErrUnauthorized, "malformed token"),
			"signature": apperrors.Wrap(apperrors.ErrUnauthorized, "invalid token signature"),
		}
		var bodies []ErrorResponse
		for name, err := range reasons {
			rec, body := performError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
			assert.Equal(t, "invalid_session", body.Error, name)
			bodies = append(bodies, body)
		}
		for _, body := range bodies[1:] {
			assert.Equal(t, bodies[0], body)
		}
	})

	t.Run("unknown errors map to opaque 500", func(t *testing.T) {
		rec, body := performError(t, errors.New("redis connection refused"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal_error", body.Error)
		assert.NotContains(t, body.Message, "redis")
	})

	t.Run("integrity errors map to opaque 500", func(t *testing.T) {
		rec, body := performError(t, apperrors.Wrap(apperrors.ErrIntegrity, "field decrypt failed"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal_error", body.Error)
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	HandleBadRequestGin(c, errors.New("invalid JSON"), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad_request")
}
