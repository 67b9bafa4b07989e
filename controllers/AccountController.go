package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/btsscan/platform/config"
	"github.com/btsscan/platform/responses"
)

// GetAccount resolves one account object id (1.2.x) to its account record.
func GetAccount(c echo.Context) error {
	id := c.Param("id")

	timeout := time.Duration(config.EnvNodeRequestTimeoutSec()) * time.Second
	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	accounts := res.ResolveAccounts(ctx, []string{id})
	if len(accounts) == 0 {
		return c.JSON(http.StatusNotFound, responses.ObjectResponse{
			Status:  http.StatusNotFound,
			Message: "account not found",
		})
	}
	return c.JSON(http.StatusOK, responses.ObjectResponse{
		Status:  http.StatusOK,
		Message: "success",
		Result:  accounts[0],
	})
}
