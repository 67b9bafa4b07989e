package responses

import "github.com/labstack/echo/v4"

// VisualizeResponse is the envelope returned by transaction endpoints.
type VisualizeResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    *echo.Map   `json:"data,omitempty"`
	Result  interface{} `json:"result,omitempty"`
}

// ObjectResponse is the envelope returned by account and asset lookups.
type ObjectResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}
