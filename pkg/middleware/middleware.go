package middleware

import (
	"net/http"
	"strings"

	"github.com/Astemirdum/notebook-loan-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

func unauthorized(cfg auth.Config, c echo.Context, msg string) error {
	return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
		"message":  msg,
		"loginUrl": cfg.LoginRedirect(c.Request().URL.String()),
	})
}

func JwtAuthentication(cfg auth.Config, revoker auth.Revoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(AuthorizationHeader)
			if authorization == "" {
				return unauthorized(cfg, c, "No Authorization Header")
			}
			if !strings.HasPrefix(authorization, bearer) {
				return unauthorized(cfg, c, "Invalid Authorization Header")
			}
			claims, err := auth.ParseToken(cfg, strings.TrimPrefix(authorization, bearer))
			if err != nil {
				return unauthorized(cfg, c, "JwtAccessDenied")
			}
			revoked, err := revoker.IsRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			if revoked {
				return unauthorized(cfg, c, "TokenRevoked")
			}

			req := c.Request()
			s := auth.Session{Profile: claims.Profile, TokenID: claims.ID}
			if claims.ExpiresAt != nil {
				s.ExpiresAt = claims.ExpiresAt.Time
			}
			c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), s)))

			return next(c)
		}
	}
}

// RoleResolver returns the role currently stored for the session's user.
type RoleResolver func(c echo.Context, s auth.Session) (string, error)

// RequireRole rejects sessions whose stored role is not one of roles.
// Resolver errors are passed on to the error handler.
func RequireRole(resolve RoleResolver, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := auth.FromContext(c.Request().Context())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			role, err := resolve(c, s)
			if err != nil {
				return err
			}
			for _, r := range roles {
				if strings.EqualFold(role, r) {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	c := middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
	return c
}
