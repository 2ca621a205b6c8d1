package dashboard

import (
	"log/slog"
	"net/http"

	dashboardsvc "github.com/EstevanMarcatti/DISKFINAL2/service/dashboard"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc dashboardsvc.Service
	Log *slog.Logger
}

// GET /api/dashboard/stats
func (h *Controller) Stats(c echo.Context) error {
	st, err := h.Svc.Stats(c.Request().Context())
	if err != nil {
		h.Log.Error("dashboard stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, st)
}
