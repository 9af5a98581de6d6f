package handler

import (
	"log/slog"
	"net/http"

	"hangar/internal/delivery/http/response"
	"hangar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ManufacturerHandler holds dependencies for manufacturer catalog handlers.
type ManufacturerHandler struct {
	uc     usecase.ManufacturerUsecase
	logger *slog.Logger
}

// NewManufacturerHandler is the constructor for ManufacturerHandler, injected by Fx.
func NewManufacturerHandler(uc usecase.ManufacturerUsecase, logger *slog.Logger) *ManufacturerHandler {
	return &ManufacturerHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paginated manufacturer listing request.
func (h *ManufacturerHandler) List(c echo.Context) error {
	input := usecase.ListManufacturersInput{
		Search:  c.QueryParam("search"),
		Country: c.QueryParam("country"),
		Page:    parsePage(c),
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Manufacturers retrieved successfully")
}

// Get handles the request for a single manufacturer.
func (h *ManufacturerHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid manufacturer ID")
	}

	manufacturer, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, manufacturer, "Manufacturer retrieved successfully")
}

// Create handles the manufacturer creation request.
func (h *ManufacturerHandler) Create(c echo.Context) error {
	var input usecase.CreateManufacturerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid manufacturer input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	manufacturer, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, manufacturer, "Manufacturer created successfully")
}

// Update handles the partial manufacturer update request.
func (h *ManufacturerHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid manufacturer ID")
	}

	var input usecase.UpdateManufacturerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid manufacturer input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	manufacturer, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, manufacturer, "Manufacturer updated successfully")
}

// Delete handles the manufacturer deletion request.
func (h *ManufacturerHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid manufacturer ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
