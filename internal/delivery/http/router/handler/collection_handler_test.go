package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hangar/internal/domain/entity"
	"hangar/internal/domain/repository"
	mocksusecase "hangar/internal/mocks/usecase"
	"hangar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newToggleContext(e *echo.Echo, body string, modelID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/models/"+modelID+"/favorite", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(modelID)
	return c, rec
}

func TestCollectionHandler_ToggleFavorite_NoContentBothDirections(t *testing.T) {
	t.Parallel()

	e := echo.New()
	mockUC := mocksusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(mockUC, slog.Default())

	mockUC.EXPECT().
		ToggleFavorite(mock.Anything, uint(9), uint(7), usecase.ToggleInput{}).
		Return(repository.ToggledOn, nil).Once()
	mockUC.EXPECT().
		ToggleFavorite(mock.Anything, uint(9), uint(7), usecase.ToggleInput{}).
		Return(repository.ToggledOff, nil).Once()

	for range 2 {
		c, rec := newToggleContext(e, `{}`, "7")
		c.Set("userID", uint(9))

		require.NoError(t, h.ToggleFavorite(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	}
}

func TestCollectionHandler_TogglePurchase_CarriesNotes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	mockUC := mocksusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(mockUC, slog.Default())

	notes := "bought at retail"
	mockUC.EXPECT().
		TogglePurchase(mock.Anything, uint(9), uint(7), usecase.ToggleInput{Notes: &notes}).
		Return(repository.ToggledOn, nil).Once()

	c, rec := newToggleContext(e, `{"notes":"bought at retail"}`, "7")
	c.Set("userID", uint(9))

	require.NoError(t, h.TogglePurchase(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCollectionHandler_Toggle_InvalidModelID(t *testing.T) {
	t.Parallel()

	e := echo.New()
	mockUC := mocksusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(mockUC, slog.Default())

	c, rec := newToggleContext(e, `{}`, "not-a-number")
	c.Set("userID", uint(9))

	require.NoError(t, h.ToggleFavorite(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCollectionHandler_Toggle_MissingUser(t *testing.T) {
	t.Parallel()

	e := echo.New()
	mockUC := mocksusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(mockUC, slog.Default())

	c, rec := newToggleContext(e, `{}`, "7")

	require.NoError(t, h.ToggleFavorite(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCollectionHandler_ListFavorites_ReadsPageSizeAlias(t *testing.T) {
	t.Parallel()

	e := echo.New()
	mockUC := mocksusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(mockUC, slog.Default())

	result := usecase.NewPageResult([]*entity.Model{{ID: 3, Name: "RX-78-2"}}, 1, repository.Page{Page: 2, PerPage: 5})
	mockUC.EXPECT().
		ListFavorites(mock.Anything, uint(9), repository.Page{Page: 2, PerPage: 5}).
		Return(result, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/user/favorites?page=2&page_size=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uint(9))

	require.NoError(t, h.ListFavorites(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"RX-78-2"`)
	assert.Contains(t, rec.Body.String(), `"per_page":5`)
}
