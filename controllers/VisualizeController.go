package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/btsscan/platform/adapter"
	"github.com/btsscan/platform/beautify"
	"github.com/btsscan/platform/config"
	"github.com/btsscan/platform/logger"
	"github.com/btsscan/platform/responses"
	"github.com/btsscan/platform/visualizer"
)

// VisualizeTransaction renders every operation of the posted transaction as
// display rows. The body may be a signed transaction, a wallet call, or a
// single typed operation.
func VisualizeTransaction(c echo.Context) error {
	var body interface{}
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.VisualizeResponse{
			Status:  http.StatusBadRequest,
			Message: "invalid JSON body",
		})
	}

	requestID := uuid.NewString()
	timeout := time.Duration(config.EnvNodeRequestTimeoutSec()) * time.Second
	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	rows, err := viz.Visualize(ctx, body)
	if err != nil {
		logger.Log.Warn().Str("request_id", requestID).Err(err).Msg("Transaction visualization failed")
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, adapter.ErrUnrecognizedShape):
			status = http.StatusBadRequest
		case errors.Is(err, visualizer.ErrMalformedOperation),
			errors.Is(err, beautify.ErrUnknownOperation),
			errors.Is(err, beautify.ErrMissingReference):
			status = http.StatusUnprocessableEntity
		}
		return c.JSON(status, responses.VisualizeResponse{
			Status:  status,
			Message: err.Error(),
		})
	}

	logger.Log.Info().Str("request_id", requestID).Int("operations", len(rows)).Msg("Transaction visualized")
	return c.JSON(http.StatusOK, responses.VisualizeResponse{
		Status:  http.StatusOK,
		Message: "success",
		Data:    &echo.Map{"operations": len(rows), "request_id": requestID},
		Result:  rows,
	})
}
