package rest

import (
	"context"
	"net/http"
	"time"

	"bassMate/domain"
	"bassMate/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

type RecommendService interface {
	Recommend(ctx context.Context, req domain.RecommendationRequest) (*domain.RecommendationResult, error)
}

type RecommendHandler struct {
	validate *validator.Validate
	service  RecommendService
}

func NewRecommendHandler(service RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate: validator.New(),
		service:  service,
	}
}

type RecommendRequest struct {
	Latitude      *float64 `json:"latitude" validate:"required"`
	Longitude     *float64 `json:"longitude" validate:"required"`
	Weather       string   `json:"weather"`
	Temperature   *float64 `json:"temperature"`
	Wind          *float64 `json:"wind"`
	Season        string   `json:"season"`
	TimeOfDay     string   `json:"time_of_day"`
	MaxDistanceKm float64  `json:"max_distance_km"`
}

// Recommend handles POST /recommendations. An empty result (no candidate
// spot within the radius) is a 200 with null data, never a synthetic
// fallback spot.
func (h *RecommendHandler) Recommend(c echo.Context) error {
	start := time.Now()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	result, err := h.service.Recommend(c.Request().Context(), domain.RecommendationRequest{
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		Weather:       req.Weather,
		Temperature:   req.Temperature,
		Wind:          req.Wind,
		Season:        req.Season,
		TimeOfDay:     req.TimeOfDay,
		MaxDistanceKm: req.MaxDistanceKm,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
