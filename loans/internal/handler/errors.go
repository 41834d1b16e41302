package handler

import (
	"net/http"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/errs"
	"github.com/Astemirdum/notebook-loan-service/pkg/circuit_breaker"
	"github.com/Astemirdum/notebook-loan-service/pkg/upload"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type partialResponse struct {
	Loan    any                       `json:"loan"`
	Failure *errs.PartialFailureError `json:"partialFailure"`
}

// httpError maps a service error onto the response.
func (h *Handler) httpError(c echo.Context, err error) error {
	switch {
	case errs.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, upload.ErrUnsupportedType):
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, upload.ErrTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, upload.ErrEmpty):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, circuit_breaker.ErrOpen):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, errs.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
			"message":  err.Error(),
			"loginUrl": h.authCfg.LoginRedirect(c.Request().URL.String()),
		})
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNothingToExport):
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNothingToExport.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrNotebookUnavailable),
		errors.Is(err, errs.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	h.log.Error("request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// loanResult renders a loan operation; a partial failure still carries the loan.
func (h *Handler) loanResult(c echo.Context, code int, loan any, err error) error {
	if pf, ok := errs.AsPartialFailure(err); ok {
		h.log.Warn("loan operation incomplete", zap.String("loanId", pf.LoanID), zap.Int("pending", len(pf.Pending)))
		return c.JSON(http.StatusMultiStatus, partialResponse{Loan: loan, Failure: pf})
	}
	if err != nil {
		return h.httpError(c, err)
	}
	if loan == nil {
		return c.NoContent(code)
	}
	return c.JSON(code, loan)
}
