package handler

import (
	"context"
	"log/slog"
	"net/http"

	"hangar/internal/delivery/http/response"
	"hangar/internal/domain/entity"
	"hangar/internal/domain/repository"
	"hangar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CollectionHandler holds dependencies for the favorite and purchase handlers.
type CollectionHandler struct {
	uc     usecase.CollectionUsecase
	logger *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler(uc usecase.CollectionUsecase, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		uc:     uc,
		logger: logger,
	}
}

// ToggleFavorite flips the favorite state of a model for the current user.
// Both directions answer 204; the caller already knows which way it went.
func (h *CollectionHandler) ToggleFavorite(c echo.Context) error {
	return h.toggle(c, h.uc.ToggleFavorite)
}

// TogglePurchase flips the purchased state of a model for the current user.
func (h *CollectionHandler) TogglePurchase(c echo.Context) error {
	return h.toggle(c, h.uc.TogglePurchase)
}

type toggleFunc func(ctx context.Context, userID, modelID uint, input usecase.ToggleInput) (repository.ToggleState, error)

func (h *CollectionHandler) toggle(c echo.Context, fn toggleFunc) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	modelID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	var input usecase.ToggleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	if _, err := fn(c.Request().Context(), userID, modelID, input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListFavorites handles the paginated listing of the current user's favorites.
func (h *CollectionHandler) ListFavorites(c echo.Context) error {
	return h.list(c, h.uc.ListFavorites, "Favorites retrieved successfully")
}

// ListPurchases handles the paginated listing of the current user's purchases.
func (h *CollectionHandler) ListPurchases(c echo.Context) error {
	return h.list(c, h.uc.ListPurchases, "Purchases retrieved successfully")
}

type listFunc func(ctx context.Context, userID uint, page repository.Page) (*usecase.PageResult[entity.Model], error)

func (h *CollectionHandler) list(c echo.Context, fn listFunc, message string) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := fn(c.Request().Context(), userID, parsePage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, message)
}
