package handler

import (
	"github.com/labstack/echo/v4"

	"moodfeed/internal/application/usecase/abstraction"
	"moodfeed/internal/domain/dto"
	"moodfeed/internal/presentation"
)

type FeedHandler struct {
	feeder abstraction.Feeder
}

func NewFeedHandler(feeder abstraction.Feeder) *FeedHandler {
	return &FeedHandler{
		feeder: feeder,
	}
}

// HandleFeed handles GET /posts?mood=&q= requests.
func (h *FeedHandler) HandleFeed(c echo.Context) error {
	items, err := h.feeder.Feed(c.Request().Context(), dto.FeedFilter{
		Mood:  c.QueryParam(presentation.MoodParam),
		Query: c.QueryParam(presentation.QueryParam),
	})
	if err != nil {
		return failFrom(c, err, "failed to load feed")
	}

	return ok(c, "items", nonNil(items))
}
