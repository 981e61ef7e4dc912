package handler

import (
	"github.com/labstack/echo/v4"

	"moodfeed/internal/domain/model"
)

func HandleMoods(c echo.Context) error {
	return ok(c, "moods", model.Moods)
}
