package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/btsscan/platform/assets"
	"github.com/btsscan/platform/config"
	"github.com/btsscan/platform/responses"
)

// GetAsset resolves one asset object id (1.3.x) to its asset record.
func GetAsset(c echo.Context) error {
	id := c.Param("id")

	timeout := time.Duration(config.EnvNodeRequestTimeoutSec()) * time.Second
	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	resolved := res.ResolveAssets(ctx, []string{id})
	if len(resolved) == 0 {
		return c.JSON(http.StatusNotFound, responses.ObjectResponse{
			Status:  http.StatusNotFound,
			Message: "asset not found",
		})
	}
	return c.JSON(http.StatusOK, responses.ObjectResponse{
		Status:  http.StatusOK,
		Message: "success",
		Result:  resolved[0],
	})
}

// GetFeeSplit reports how a core asset fee divides between the network and
// the referral rebate under the configured rebate percentage.
func GetFeeSplit(c echo.Context) error {
	units, err := strconv.ParseInt(c.Param("amount"), 10, 64)
	if err != nil || units < 0 {
		return c.JSON(http.StatusBadRequest, responses.ObjectResponse{
			Status:  http.StatusBadRequest,
			Message: "amount must be a non-negative integer of base units",
		})
	}

	percent := config.EnvReferralRebatePercent()
	network, rebate := assets.SplitFee(units, percent)
	return c.JSON(http.StatusOK, responses.ObjectResponse{
		Status:  http.StatusOK,
		Message: "success",
		Result: &echo.Map{
			"rebate_percent": percent,
			"network":        network,
			"rebate":         rebate,
		},
	})
}
