package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"moodfeed/internal/application/usecase"
	"moodfeed/pkg/logger"
)

// ok writes a successful envelope: {"ok": true, <key>: <value>}.
func ok(c echo.Context, key string, value any) error {
	body := echo.Map{"ok": true}
	if key != "" {
		body[key] = value
	}

	return c.JSON(http.StatusOK, body)
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"ok": false, "error": msg})
}

// failFrom maps usecase errors to a status: 400 for validation errors, 500 for
// anything else. The error message is returned to the caller in both cases.
func failFrom(c echo.Context, err error, logMsg string) error {
	if usecase.IsValidationError(err) {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	logger.Error(logMsg, "path", c.Path(), "err", err)

	return fail(c, http.StatusInternalServerError, err.Error())
}
