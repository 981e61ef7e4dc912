package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"moodfeed/internal/application/usecase/abstraction"
	"moodfeed/internal/presentation"
)

type NotificationHandler struct {
	notifier abstraction.Notifier
}

func NewNotificationHandler(notifier abstraction.Notifier) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
	}
}

// HandleRecent handles GET /notifications?limit= requests.
func (h *NotificationHandler) HandleRecent(c echo.Context) error {
	limit := 0
	if s := c.QueryParam(presentation.LimitParam); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid 'limit'")
		}
		limit = n
	}

	items, err := h.notifier.Recent(c.Request().Context(), limit)
	if err != nil {
		return failFrom(c, err, "failed to load notifications")
	}

	return ok(c, "items", nonNil(items))
}
