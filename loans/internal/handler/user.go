package handler

import (
	"net/http"
	"strings"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/filter"
	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) session(c echo.Context) (auth.Session, error) {
	return auth.FromContext(c.Request().Context())
}

// storedRole reads the role from the user record, so a demotion applies to
// tokens issued before it.
func (h *Handler) storedRole(c echo.Context, sess auth.Session) (string, error) {
	u, err := h.svc.Me(c.Request().Context(), sess)
	if err != nil {
		return "", h.httpError(c, err)
	}
	return string(u.Role), nil
}

// Login redirects to the identity provider, which returns to returnUrl.
//
// @Summary Login redirect
// @Tags auth
// @Param returnUrl query string false "where to return after login"
// @Success 302
// @Router /login [get]
func (h *Handler) Login(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.authCfg.LoginRedirect(c.QueryParam("returnUrl")))
}

// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errs.ErrorResponse
// @Router /me [get]
func (h *Handler) GetMe(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return h.httpError(c, err)
	}
	u, err := h.svc.Me(c.Request().Context(), sess)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// @Summary Update contact details of the current user
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param profile body model.ProfileUpdate true "editable fields"
// @Success 200 {object} model.User
// @Router /me [patch]
func (h *Handler) UpdateMe(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return h.httpError(c, err)
	}
	var req model.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.UpdateMe(c.Request().Context(), sess, req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// @Summary Logout, revoking the current token
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Router /logout [post]
func (h *Handler) Logout(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return h.httpError(c, err)
	}
	if err := h.revoker.Revoke(c.Request().Context(), sess.TokenID, sess.ExpiresAt); err != nil {
		return h.httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param role query string false "ADMIN or TECHNICIAN"
// @Param q query string false "search by name or email"
// @Success 200 {object} service.UserList
// @Failure 403 {object} errs.ErrorResponse
// @Router /users [get]
func (h *Handler) ListUsers(c echo.Context) error {
	var crit filter.UserCriteria
	if r := c.QueryParam("role"); r != "" {
		role, err := model.ParseRole(strings.ToUpper(r))
		if err != nil {
			return h.httpError(c, err)
		}
		crit.Role = &role
	}
	crit.Search = c.QueryParam("q")
	users, err := h.svc.ListUsers(c.Request().Context(), crit)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}
