package rental

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
	geocoderepo "github.com/EstevanMarcatti/DISKFINAL2/repository/geocode"
	rs "github.com/EstevanMarcatti/DISKFINAL2/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/rental-notes
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	out, err := h.Svc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrClientNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "client not found"})
		case rs.ErrValidation:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unregistered rentals need a client name and address"})
		}
		h.Log.Error("rental create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /api/rental-notes?status=active|retrieved
func (h *Controller) List(c echo.Context) error {
	status := model.RentalStatus(c.QueryParam("status"))
	if status != "" && status != model.RentalActive && status != model.RentalRetrieved {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status filter"})
	}
	rows, err := h.Svc.List(c.Request().Context(), status)
	if err != nil {
		h.Log.Error("rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /api/rental-notes/with-status
func (h *Controller) ListWithColor(c echo.Context) error {
	return h.colored(c, h.Svc.ListWithColor)
}

// GET /api/rental-notes/active
func (h *Controller) Active(c echo.Context) error { return h.colored(c, h.Svc.Active) }

// GET /api/rental-notes/retrieved
func (h *Controller) Retrieved(c echo.Context) error { return h.colored(c, h.Svc.Retrieved) }

// GET /api/rental-notes/overdue
func (h *Controller) Overdue(c echo.Context) error { return h.colored(c, h.Svc.Overdue) }

// GET /api/rental-notes/expired
func (h *Controller) Expired(c echo.Context) error { return h.colored(c, h.Svc.Expired) }

func (h *Controller) colored(c echo.Context, f func(ctx context.Context) ([]model.RentalNoteWithColor, error)) error {
	rows, err := f(c.Request().Context())
	if err != nil {
		h.Log.Error("rental listing", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// PUT /api/rental-notes/:id/retrieve
func (h *Controller) Retrieve(c echo.Context) error {
	if err := h.Svc.Retrieve(c.Request().Context(), c.Param("id")); err != nil {
		if rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental note not found"})
		}
		h.Log.Error("rental retrieve", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "dumpster marked as retrieved"})
}

// PUT /api/rental-notes/:id/pay
func (h *Controller) Pay(c echo.Context) error {
	if err := h.Svc.MarkPaid(c.Request().Context(), c.Param("id")); err != nil {
		if rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental note not found"})
		}
		h.Log.Error("rental pay", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "dumpster marked as paid"})
}

// PUT /api/rental-notes/:id/coordinates
func (h *Controller) Coordinates(c echo.Context) error {
	var req CoordinatesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	if err := h.Svc.UpdateCoordinates(c.Request().Context(), c.Param("id"), *req.Latitude, *req.Longitude); err != nil {
		if rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental note not found"})
		}
		h.Log.Error("rental coordinates", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "coordinates updated"})
}

// PUT /api/rental-notes/:id/geocode
func (h *Controller) Geocode(c echo.Context) error {
	out, err := h.Svc.Geocode(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental note not found"})
		case rs.ErrNoAddress:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "rental note has no address"})
		}
		if errors.Is(err, geocoderepo.ErrNoMatch) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "address could not be geocoded"})
		}
		h.Log.Error("rental geocode", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /api/rental-notes/:id
func (h *Controller) Delete(c echo.Context) error {
	if err := h.Svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental note not found"})
		}
		h.Log.Error("rental delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "rental note deleted"})
}
