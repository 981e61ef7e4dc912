// Package router assembles the HTTP surface.
package router

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"moodfeed/internal/presentation"
	"moodfeed/internal/presentation/handler"
	"moodfeed/internal/presentation/middleware"
	"moodfeed/internal/presentation/web"
	"moodfeed/pkg/logger"
)

type Config struct {
	BodyLimit string `yaml:"body_limit" env:"HTTP_BODY_LIMIT" env-default:"50M"`
	// RateLimit is requests per second per client. Zero disables limiting.
	RateLimit    float64  `yaml:"rate_limit"    env:"HTTP_RATE_LIMIT" env-default:"20"`
	AllowOrigins []string `yaml:"allow_origins" env:"HTTP_ALLOW_ORIGINS" env-default:"*"`
}

type Handlers struct {
	Upload       *handler.UploadHandler
	List         *handler.ListHandler
	Feed         *handler.FeedHandler
	Delete       *handler.DeleteHandler
	Stats        *handler.StatsHandler
	Notification *handler.NotificationHandler
}

// StaticDir is a local directory served under Prefix.
type StaticDir struct {
	Prefix string
	Dir    string
}

func New(cfg Config, h Handlers, static *StaticDir) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v echoMiddleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Warn("request", "method", v.Method, "path", v.URIPath, "status", v.Status,
					"latency", v.Latency.String(), "err", v.Error)

				return nil
			}
			logger.Debug("request", "method", v.Method, "path", v.URIPath, "status", v.Status,
				"latency", v.Latency.String())

			return nil
		},
	}))
	e.Use(middleware.Metrics())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	if cfg.BodyLimit != "" {
		e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
	}
	if cfg.RateLimit > 0 {
		e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/upload", h.Upload.Handle)
	e.GET("/upload", h.List.HandleList)
	e.GET("/posts", h.Feed.HandleFeed)
	e.DELETE(fmt.Sprintf("/files/:%s", presentation.IDParam), h.Delete.HandleDelete)
	e.GET("/stats", h.Stats.HandleStats)
	e.GET("/notifications", h.Notification.HandleRecent)
	e.GET("/moods", handler.HandleMoods)

	if static != nil {
		e.Static(static.Prefix, static.Dir)
	}
	e.StaticFS("/", web.FS())

	return e
}
