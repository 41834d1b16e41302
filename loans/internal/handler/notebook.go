package handler

import (
	"net/http"
	"strings"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/repository"
	"github.com/labstack/echo/v4"
)

var notebookSortFields = keys(repository.NotebookSortFields)

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// @Summary List notebooks
// @Tags notebooks
// @Security BearerAuth
// @Produce json
// @Param state query string false "AVAILABLE, LOANED or MAINTENANCE"
// @Param q query string false "search by asset tag, model, serial number or holder"
// @Param sort query string false "field, prefixed by - for descending"
// @Success 200 {array} model.Notebook
// @Router /notebooks [get]
func (h *Handler) ListNotebooks(c echo.Context) error {
	q := model.NotebookQuery{
		Sort: model.ParseSort(c.QueryParam("sort"), notebookSortFields, model.Sort{Field: "assetTag"}),
	}
	if s := c.QueryParam("state"); s != "" {
		st, err := model.ParseNotebookState(strings.ToUpper(s))
		if err != nil {
			return h.httpError(c, err)
		}
		q.State = &st
	}
	notebooks, err := h.svc.ListNotebooks(c.Request().Context(), q, c.QueryParam("q"))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, notebooks)
}

// @Summary Get notebook
// @Tags notebooks
// @Security BearerAuth
// @Produce json
// @Param id path string true "notebook id"
// @Success 200 {object} model.Notebook
// @Failure 404 {object} errs.ErrorResponse
// @Router /notebooks/{id} [get]
func (h *Handler) GetNotebook(c echo.Context) error {
	n, err := h.svc.GetNotebook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, n)
}

func (h *Handler) bindNotebook(c echo.Context) (model.NotebookRequest, error) {
	var req model.NotebookRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.AssetTag = strings.TrimSpace(req.AssetTag)
	req.SerialNumber = strings.TrimSpace(req.SerialNumber)
	if err := c.Validate(req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// @Summary Register notebook
// @Tags notebooks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param notebook body model.NotebookRequest true "notebook"
// @Success 201 {object} model.Notebook
// @Failure 409 {object} errs.ErrorResponse
// @Router /notebooks [post]
func (h *Handler) CreateNotebook(c echo.Context) error {
	req, err := h.bindNotebook(c)
	if err != nil {
		return err
	}
	n, err := h.svc.CreateNotebook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusCreated, n)
}

// @Summary Edit notebook
// @Tags notebooks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "notebook id"
// @Param notebook body model.NotebookRequest true "notebook"
// @Success 200 {object} model.Notebook
// @Router /notebooks/{id} [put]
func (h *Handler) UpdateNotebook(c echo.Context) error {
	req, err := h.bindNotebook(c)
	if err != nil {
		return err
	}
	n, err := h.svc.UpdateNotebook(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, n)
}

// @Summary Delete notebook
// @Tags notebooks
// @Security BearerAuth
// @Param id path string true "notebook id"
// @Success 204
// @Failure 409 {object} errs.ErrorResponse
// @Router /notebooks/{id} [delete]
func (h *Handler) DeleteNotebook(c echo.Context) error {
	if err := h.svc.DeleteNotebook(c.Request().Context(), c.Param("id")); err != nil {
		return h.httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
