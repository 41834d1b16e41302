package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// @Summary Upload a signed return term
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF, JPG or PNG"
// @Success 201 {object} upload.Result
// @Failure 415 {object} errs.ErrorResponse
// @Router /uploads [post]
func (h *Handler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()

	f, err := h.uploader.Read(fh.Filename, src)
	if err != nil {
		return h.httpError(c, err)
	}
	res, err := h.uploader.Upload(c.Request().Context(), f)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}
