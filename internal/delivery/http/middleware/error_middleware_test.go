package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "hangar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleHTTPError_UnclassifiedErrorHidesCause(t *testing.T) {
	t.Parallel()

	mw := NewErrorMiddleware(slog.Default())
	c, rec := newErrorContext(t)

	// A wrapped driver failure the repositories return on store errors.
	storeErr := errors.Wrap(
		errors.New(`pq: password authentication failed for user "hangar"`),
		"failed to count models",
	)

	mw.HandleHTTPError(storeErr, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"INTERNAL_ERROR"`)
	assert.NotContains(t, body, "pq:")
	assert.NotContains(t, body, "password authentication")
	assert.NotContains(t, body, "failed to count models")
}

func TestHandleHTTPError_AppErrorKeepsItsCodes(t *testing.T) {
	t.Parallel()

	mw := NewErrorMiddleware(slog.Default())
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(domainerrors.ErrModelNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"MODEL_NOT_FOUND"`)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	t.Parallel()

	mw := NewErrorMiddleware(slog.Default())
	c, rec := newErrorContext(t)

	mw.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid payload")
}
