package handler

import (
	"net/http"
	"strings"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/filter"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/repository"
	"github.com/labstack/echo/v4"
)

var loanSortFields = keys(repository.LoanSortFields)

// @Summary List loans
// @Tags loans
// @Security BearerAuth
// @Produce json
// @Param tab query string false "all, active or returned"
// @Param status query string false "ACTIVE or RETURNED"
// @Param department query string false "requester department"
// @Param q query string false "search by requester, asset tag or department"
// @Param sort query string false "field, prefixed by - for descending"
// @Success 200 {object} service.LoanList
// @Router /loans [get]
func (h *Handler) ListLoans(c echo.Context) error {
	tab, err := filter.ParseTab(c.QueryParam("tab"))
	if err != nil {
		return h.httpError(c, err)
	}
	crit := filter.LoanCriteria{
		Tab:        tab,
		Department: c.QueryParam("department"),
		Search:     c.QueryParam("q"),
	}
	if s := c.QueryParam("status"); s != "" {
		st, err := model.ParseLoanStatus(strings.ToUpper(s))
		if err != nil {
			return h.httpError(c, err)
		}
		crit.Status = &st
	}
	q := model.LoanQuery{
		Sort: model.ParseSort(c.QueryParam("sort"), loanSortFields, model.Sort{Field: "createdAt", Desc: true}),
	}
	loans, err := h.svc.ListLoans(c.Request().Context(), q, crit)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

// @Summary Departments seen on loans
// @Tags loans
// @Security BearerAuth
// @Produce json
// @Success 200 {array} string
// @Router /loans/departments [get]
func (h *Handler) ListDepartments(c echo.Context) error {
	deps, err := h.svc.ListDepartments(c.Request().Context())
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, deps)
}

// @Summary Get loan
// @Tags loans
// @Security BearerAuth
// @Produce json
// @Param id path string true "loan id"
// @Success 200 {object} model.Loan
// @Failure 404 {object} errs.ErrorResponse
// @Router /loans/{id} [get]
func (h *Handler) GetLoan(c echo.Context) error {
	l, err := h.svc.GetLoan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *Handler) bindLoan(c echo.Context) (model.LoanRequest, error) {
	var req model.LoanRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// @Summary Create loan
// @Tags loans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param loan body model.LoanRequest true "loan"
// @Success 201 {object} model.Loan
// @Success 207 {object} partialResponse
// @Failure 400 {object} errs.ErrorResponse
// @Failure 409 {object} errs.ErrorResponse
// @Router /loans [post]
func (h *Handler) CreateLoan(c echo.Context) error {
	req, err := h.bindLoan(c)
	if err != nil {
		return err
	}
	sess, err := h.session(c)
	if err != nil {
		return h.httpError(c, err)
	}
	technician := sess.Profile.Name
	if technician == "" {
		technician = sess.Profile.Email
	}
	l, err := h.svc.CreateLoan(c.Request().Context(), technician, req)
	return h.loanResult(c, http.StatusCreated, l, err)
}

// @Summary Edit loan
// @Tags loans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "loan id"
// @Param loan body model.LoanRequest true "loan"
// @Success 200 {object} model.Loan
// @Success 207 {object} partialResponse
// @Router /loans/{id} [put]
func (h *Handler) UpdateLoan(c echo.Context) error {
	req, err := h.bindLoan(c)
	if err != nil {
		return err
	}
	l, err := h.svc.UpdateLoan(c.Request().Context(), c.Param("id"), req)
	return h.loanResult(c, http.StatusOK, l, err)
}

// @Summary Register return
// @Tags loans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "loan id"
// @Param return body model.ReturnRequest true "return details"
// @Success 200 {object} model.Loan
// @Success 207 {object} partialResponse
// @Failure 409 {object} errs.ErrorResponse
// @Router /loans/{id}/return [post]
func (h *Handler) ReturnLoan(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	l, err := h.svc.ReturnLoan(c.Request().Context(), c.Param("id"), req)
	return h.loanResult(c, http.StatusOK, l, err)
}

// @Summary Delete loan
// @Tags loans
// @Security BearerAuth
// @Param id path string true "loan id"
// @Success 204
// @Success 207 {object} partialResponse
// @Router /loans/{id} [delete]
func (h *Handler) DeleteLoan(c echo.Context) error {
	err := h.svc.DeleteLoan(c.Request().Context(), c.Param("id"))
	return h.loanResult(c, http.StatusNoContent, nil, err)
}
