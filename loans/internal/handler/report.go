package handler

import (
	"fmt"
	"net/http"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/report"
	"github.com/labstack/echo/v4"
)

// @Summary Report view
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param view path string true "available, loaned, overdue or history"
// @Param assetTag query string false "notebook of the history view"
// @Success 200 {array} object
// @Router /reports/{view} [get]
func (h *Handler) GetReport(c echo.Context) error {
	view, err := report.ParseView(c.Param("view"))
	if err != nil {
		return h.httpError(c, err)
	}
	rows, err := h.svc.Report(c.Request().Context(), view, c.QueryParam("assetTag"))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// @Summary Export report view
// @Description ;-delimited UTF-8 text with BOM, every value quoted.
// @Tags reports
// @Security BearerAuth
// @Produce text/csv
// @Param view path string true "available, loaned or overdue"
// @Success 200 {string} string
// @Failure 404 {object} errs.ErrorResponse "nothing to export"
// @Router /reports/{view}/export [get]
func (h *Handler) ExportReport(c echo.Context) error {
	view, err := report.ParseView(c.Param("view"))
	if err != nil {
		return h.httpError(c, err)
	}
	t, err := h.svc.ExportReport(c.Request().Context(), view)
	if err != nil {
		return h.httpError(c, err)
	}
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	resp.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", string(view)+".csv"))
	resp.WriteHeader(http.StatusOK)
	return report.Export(resp, t)
}

// @Summary Dashboard statistics
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} report.Dashboard
// @Router /dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// @Summary Active loans awaiting return
// @Tags loans
// @Security BearerAuth
// @Produce json
// @Param q query string false "search by requester, asset tag or department"
// @Success 200 {object} service.ReturnList
// @Router /returns [get]
func (h *Handler) Returns(c echo.Context) error {
	r, err := h.svc.Returns(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}
