package client

import (
	"errors"
	"log/slog"
	"net/http"

	clientsvc "github.com/EstevanMarcatti/DISKFINAL2/service/client"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc clientsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/clients
func (h *Controller) Create(c echo.Context) error {
	var req ClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	out, err := h.Svc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		if errors.Is(err, clientsvc.ErrBadInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "name and address are required"})
		}
		h.Log.Error("client create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /api/clients
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("client list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /api/clients/:id
func (h *Controller) Get(c echo.Context) error {
	out, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, clientsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "client not found"})
		}
		h.Log.Error("client get", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// PUT /api/clients/:id
func (h *Controller) Update(c echo.Context) error {
	var req ClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	out, err := h.Svc.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, clientsvc.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "client not found"})
		case errors.Is(err, clientsvc.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "name and address are required"})
		}
		h.Log.Error("client update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /api/clients/:id
func (h *Controller) Delete(c echo.Context) error {
	if err := h.Svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, clientsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "client not found"})
		}
		h.Log.Error("client delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "client deleted"})
}

// GET /api/clients/:id/stats
func (h *Controller) Stats(c echo.Context) error {
	out, err := h.Svc.Stats(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.Log.Error("client stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}
