package http

import (
	"errors"
	"fmt"
	"net/http"

	notifDomain "declatogo-backend/internal/domain/notification"
	notifUsecase "declatogo-backend/internal/usecase/notification"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct{ uc *notifUsecase.Usecase }

func NewNotificationHandler(uc *notifUsecase.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	rows, err := h.uc.List(c.Request().Context(), owner)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "list failed"})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *NotificationHandler) Unread(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	rows, err := h.uc.Unread(c.Request().Context(), owner)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "list failed"})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	err = h.uc.MarkRead(c.Request().Context(), owner, c.Param("notification_id"))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"status": "notification marked as read"})
	case errors.Is(err, notifDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "mark read failed"})
	}
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	n, err := h.uc.MarkAllRead(c.Request().Context(), owner)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "mark all read failed"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": fmt.Sprintf("%d notification(s) marked as read", n),
	})
}
