package handler

import (
	"log/slog"
	"net/http"

	"hangar/internal/delivery/http/response"
	"hangar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ModelHandler holds dependencies for model catalog handlers.
type ModelHandler struct {
	uc     usecase.ModelUsecase
	logger *slog.Logger
}

// NewModelHandler is the constructor for ModelHandler, injected by Fx.
func NewModelHandler(uc usecase.ModelUsecase, logger *slog.Logger) *ModelHandler {
	return &ModelHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paginated model listing request.
func (h *ModelHandler) List(c echo.Context) error {
	input := usecase.ListModelsInput{
		Search:       c.QueryParam("search"),
		Manufacturer: c.QueryParam("manufacturer"),
		Series:       c.QueryParam("series"),
		Category:     c.QueryParam("category"),
		Status:       c.QueryParam("status"),
		Page:         parsePage(c),
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Models retrieved successfully")
}

// Get handles the request for a single model.
func (h *ModelHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	model, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, model, "Model retrieved successfully")
}

// ListVariants handles the request for a model's direct variants.
func (h *ModelHandler) ListVariants(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	variants, err := h.uc.ListVariants(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variants, "Variants retrieved successfully")
}

// Create handles the model creation request.
func (h *ModelHandler) Create(c echo.Context) error {
	var input usecase.CreateModelInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid model input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	model, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, model, "Model created successfully")
}

// Update handles the partial model update request.
func (h *ModelHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	var input usecase.UpdateModelInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid model input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	model, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, model, "Model updated successfully")
}

// Delete handles the model deletion request.
func (h *ModelHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListPrices handles the paginated price history request for a model.
func (h *ModelHandler) ListPrices(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	output, err := h.uc.ListPrices(c.Request().Context(), id, parsePage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Price history retrieved successfully")
}

// AddPrice handles the request to append a price point to a model.
func (h *ModelHandler) AddPrice(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	var input usecase.AddPriceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	price, err := h.uc.AddPrice(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, price, "Price recorded successfully")
}

// DeletePrice handles the request to remove a price point from a model.
func (h *ModelHandler) DeletePrice(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid model ID")
	}

	priceID, err := parseID(c, "priceId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid price ID")
	}

	if err := h.uc.DeletePrice(c.Request().Context(), id, priceID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
