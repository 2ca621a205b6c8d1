package dumpster

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
	dumpstersvc "github.com/EstevanMarcatti/DISKFINAL2/service/dumpster"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc dumpstersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type UpdatePriceReq struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// GET /api/dumpster-types
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("dumpster types list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// PUT /api/dumpster-types/:size
func (h *Controller) UpdatePrice(c echo.Context) error {
	var req UpdatePriceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	size := model.DumpsterSize(c.Param("size"))
	if err := h.Svc.UpdatePrice(c.Request().Context(), size, req.Price); err != nil {
		if errors.Is(err, dumpstersvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "dumpster type not found"})
		}
		h.Log.Error("dumpster price update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "price updated"})
}
