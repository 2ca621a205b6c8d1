package landfill

import (
	"errors"
	"log/slog"
	"net/http"

	landfillsvc "github.com/EstevanMarcatti/DISKFINAL2/service/landfill"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc landfillsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type LandfillReq struct {
	Name      string   `json:"name" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// POST /api/landfills
func (h *Controller) Create(c echo.Context) error {
	var req LandfillReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	out, err := h.Svc.Create(c.Request().Context(), landfillsvc.Input{
		Name: req.Name, Address: req.Address, Latitude: req.Latitude, Longitude: req.Longitude,
	})
	if err != nil {
		if errors.Is(err, landfillsvc.ErrBadInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "name and address are required"})
		}
		h.Log.Error("landfill create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /api/landfills
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("landfill list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
