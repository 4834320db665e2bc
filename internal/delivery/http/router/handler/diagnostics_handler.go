package handler

import (
	"net/http"

	"portal/internal/delivery/http/response"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
)

const rootMessage = "Data Science Portal API"

// DiagnosticsHandler serves the unauthenticated service information endpoints.
type DiagnosticsHandler struct {
	uc usecase.DiagnosticsUsecase
}

// NewDiagnosticsHandler is the constructor for DiagnosticsHandler.
func NewDiagnosticsHandler(uc usecase.DiagnosticsUsecase) *DiagnosticsHandler {
	return &DiagnosticsHandler{uc: uc}
}

// Root identifies the API.
func (h *DiagnosticsHandler) Root(c echo.Context) error {
	return response.Message(c, http.StatusOK, rootMessage)
}

// Database reports store connectivity. It answers 200 even when the store is down.
func (h *DiagnosticsHandler) Database(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Report(c.Request().Context()))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
