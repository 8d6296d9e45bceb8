package router

import (
	"bassMate/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/recommendations", handler.Recommend, authRequired)
}

func SetupCatchRoutes(api *echo.Group, handler *rest.CatchHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/catches", handler.SubmitCatch, authRequired)
}
