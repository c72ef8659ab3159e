package http

import (
	"net/http"

	catDomain "declatogo-backend/internal/domain/category"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct{ repo catDomain.Repository }

func NewCategoryHandler(repo catDomain.Repository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

func (h *CategoryHandler) List(c echo.Context) error {
	rows, err := h.repo.List(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "list failed"})
	}
	return c.JSON(http.StatusOK, rows)
}
