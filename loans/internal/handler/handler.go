package handler

import (
	"net/http"

	_ "github.com/Astemirdum/notebook-loan-service/swagger"

	"github.com/Astemirdum/notebook-loan-service/loans/internal/model"
	"github.com/Astemirdum/notebook-loan-service/pkg/auth"
	md "github.com/Astemirdum/notebook-loan-service/pkg/middleware"
	"github.com/Astemirdum/notebook-loan-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	svc      Service
	uploader Uploader
	revoker  auth.Revoker
	authCfg  auth.Config
	log      *zap.Logger
}

func New(svc Service, uploader Uploader, revoker auth.Revoker, authCfg auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		uploader: uploader,
		revoker:  revoker,
		authCfg:  authCfg,
		log:      log.Named("handler"),
	}
}

// @title Notebook loan service
// @version 1.0
// @description Notebook registry, loans, returns and reports.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/login", h.Login)

	api = api.Group("", md.JwtAuthentication(h.authCfg, h.revoker))
	api.GET("/me", h.GetMe)
	api.PATCH("/me", h.UpdateMe)
	api.POST("/logout", h.Logout)

	api.GET("/notebooks", h.ListNotebooks)
	api.POST("/notebooks", h.CreateNotebook)
	api.GET("/notebooks/:id", h.GetNotebook)
	api.PUT("/notebooks/:id", h.UpdateNotebook)
	api.DELETE("/notebooks/:id", h.DeleteNotebook)

	api.GET("/loans", h.ListLoans)
	api.POST("/loans", h.CreateLoan)
	api.GET("/loans/departments", h.ListDepartments)
	api.GET("/loans/:id", h.GetLoan)
	api.PUT("/loans/:id", h.UpdateLoan)
	api.DELETE("/loans/:id", h.DeleteLoan)
	api.POST("/loans/:id/return", h.ReturnLoan)

	api.GET("/returns", h.Returns)
	api.GET("/reports/:view", h.GetReport)
	api.GET("/reports/:view/export", h.ExportReport)
	api.GET("/dashboard", h.Dashboard)
	api.POST("/uploads", h.Upload)

	admin := api.Group("", md.RequireRole(h.storedRole, string(model.RoleAdmin)))
	admin.GET("/users", h.ListUsers)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
