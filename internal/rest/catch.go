package rest

import (
	"context"
	"net/http"
	"time"

	"bassMate/business/catches"
	"bassMate/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CatchService interface {
	Submit(ctx context.Context, sub catches.SubmittedCatch) (domain.FishingCatch, error)
}

type CatchHandler struct {
	validate *validator.Validate
	service  CatchService
}

func NewCatchHandler(service CatchService) *CatchHandler {
	return &CatchHandler{
		validate: validator.New(),
		service:  service,
	}
}

type SubmitCatchRequest struct {
	SpotName    string   `json:"spot_name" validate:"required"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	Timestamp   string   `json:"timestamp" validate:"required"`
	Temperature *float64 `json:"temperature"`
	Condition   string   `json:"condition"`
	Rig         string   `json:"rig"`
}

// SubmitCatch handles POST /catches: a catch reported from the app, queued
// as raw data for the next ingestion pass.
func (h *CatchHandler) SubmitCatch(c echo.Context) error {
	var req SubmitCatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	postedAt, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "timestamp must be RFC3339"})
	}

	catch, err := h.service.Submit(c.Request().Context(), catches.SubmittedCatch{
		SpotName:    req.SpotName,
		Address:     req.Address,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Timestamp:   postedAt,
		Temperature: req.Temperature,
		Condition:   req.Condition,
		Rig:         req.Rig,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(catch))
}
