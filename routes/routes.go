package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/btsscan/platform/controllers"
)

func Add(e *echo.Echo) {
	e.POST("/v1/transaction/visualize", controllers.VisualizeTransaction)
	e.GET("/v1/account/:id", controllers.GetAccount)
	e.GET("/v1/asset/:id", controllers.GetAsset)
	e.GET("/v1/fee/split/:amount", controllers.GetFeeSplit)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "btsscan",
		})
	})
}
