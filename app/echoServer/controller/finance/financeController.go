package finance

import (
	"errors"
	"log/slog"
	"net/http"

	financesvc "github.com/EstevanMarcatti/DISKFINAL2/service/finance"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc financesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/payments
func (h *Controller) CreatePayment(c echo.Context) error {
	var req PaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	out, err := h.Svc.CreatePayment(c.Request().Context(), req.toInput())
	if err != nil {
		if errors.Is(err, financesvc.ErrBadInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payment"})
		}
		h.Log.Error("payment create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /api/payments
func (h *Controller) ListPayments(c echo.Context) error {
	rows, err := h.Svc.ListPayments(c.Request().Context())
	if err != nil {
		h.Log.Error("payment list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /api/receivables
func (h *Controller) CreateReceivable(c echo.Context) error {
	var req ReceivableReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	out, err := h.Svc.CreateReceivable(c.Request().Context(), req.toInput())
	if err != nil {
		if errors.Is(err, financesvc.ErrBadInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid receivable"})
		}
		h.Log.Error("receivable create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /api/receivables
func (h *Controller) ListReceivables(c echo.Context) error {
	rows, err := h.Svc.ListReceivables(c.Request().Context())
	if err != nil {
		h.Log.Error("receivable list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /api/reports/detailed
func (h *Controller) DetailedReport(c echo.Context) error {
	var req ReportReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	rep, err := h.Svc.DetailedReport(c.Request().Context(), req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, financesvc.ErrInvalidRange) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "start_date and end_date must be YYYY-MM-DD and ordered"})
		}
		h.Log.Error("detailed report", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rep)
}

// GET /api/financial/monthly-summary
func (h *Controller) MonthlySummary(c echo.Context) error {
	sum, err := h.Svc.MonthlySummary(c.Request().Context())
	if err != nil {
		h.Log.Error("monthly summary", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, sum)
}
