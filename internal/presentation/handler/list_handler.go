package handler

import (
	"github.com/labstack/echo/v4"

	"moodfeed/internal/application/usecase/abstraction"
	"moodfeed/internal/domain/model"
	"moodfeed/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /upload?kind= requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	files, err := h.lister.List(c.Request().Context(), model.Kind(c.QueryParam(presentation.KindParam)))
	if err != nil {
		return failFrom(c, err, "failed to list files")
	}

	return ok(c, "files", nonNil(files))
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
