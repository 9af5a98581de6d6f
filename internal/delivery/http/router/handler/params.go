package handler

import (
	"strconv"

	"hangar/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Errorf("invalid %s: %q", name, raw)
	}

	return uint(id), nil
}

// parsePage reads the paging window from query parameters. Both per_page and
// its page_size alias are accepted; a missing or invalid per_page falls back
// to DefaultPerPage.
func parsePage(c echo.Context) repository.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	perPageRaw := c.QueryParam("per_page")
	if perPageRaw == "" {
		perPageRaw = c.QueryParam("page_size")
	}
	perPage, _ := strconv.Atoi(perPageRaw)
	if perPage < 1 {
		perPage = repository.DefaultPerPage
	}

	return repository.Page{Page: page, PerPage: perPage}.Normalized()
}

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c echo.Context) (uint, bool) {
	userID, ok := c.Get("userID").(uint)
	return userID, ok
}
