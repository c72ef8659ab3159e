package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// HeaderOwnerID carries the authenticated principal's public id.
// Authentication itself lives in front of this service; the gateway is
// trusted to have verified the header.
const HeaderOwnerID = "Ax-Owner-Id"

func ownerID(c echo.Context) (string, error) {
	id := strings.TrimSpace(c.Request().Header.Get(HeaderOwnerID))
	if !reHex32.MatchString(id) {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing or invalid "+HeaderOwnerID)
	}
	return id, nil
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
