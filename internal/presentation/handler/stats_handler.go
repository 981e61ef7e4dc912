package handler

import (
	"github.com/labstack/echo/v4"

	"moodfeed/internal/application/usecase/abstraction"
)

type StatsHandler struct {
	stats abstraction.Stats
}

func NewStatsHandler(stats abstraction.Stats) *StatsHandler {
	return &StatsHandler{
		stats: stats,
	}
}

func (h *StatsHandler) HandleStats(c echo.Context) error {
	stats, err := h.stats.Summary(c.Request().Context())
	if err != nil {
		return failFrom(c, err, "failed to compute stats")
	}

	return ok(c, "stats", stats)
}
