package handler

import (
	"github.com/labstack/echo/v4"

	"moodfeed/internal/application/usecase/abstraction"
	"moodfeed/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /files/:id. Unknown ids succeed.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	if err := h.deleter.Delete(c.Request().Context(), c.Param(presentation.IDParam)); err != nil {
		return failFrom(c, err, "failed to delete file")
	}

	return ok(c, "", nil)
}
