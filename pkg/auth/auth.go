package auth

import (
	"context"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Config struct {
	Secret   string        `yaml:"secret" envconfig:"AUTH_JWT_SECRET"`
	Issuer   string        `yaml:"issuer" envconfig:"AUTH_ISSUER" default:"identity-provider"`
	LoginURL string        `yaml:"loginUrl" envconfig:"AUTH_LOGIN_URL" default:"/login"`
	TokenTTL time.Duration `yaml:"tokenTtl" envconfig:"AUTH_TOKEN_TTL" default:"8h"`
}

// LoginRedirect builds the identity provider URL that returns to returnURL after login.
func (cfg Config) LoginRedirect(returnURL string) string {
	u, err := url.Parse(cfg.LoginURL)
	if err != nil {
		return cfg.LoginURL
	}
	if returnURL != "" {
		q := u.Query()
		q.Set("returnUrl", returnURL)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrTokenRevoked    = errors.New("token revoked")
)

func ParseToken(cfg Config, tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}
	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, ErrUnauthenticated
	}
	if claims.Profile.Email == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}

// IssueToken signs a token the same way the identity provider does.
func IssueToken(cfg Config, p Profile, now time.Time) (string, error) {
	claims := Claims{
		Profile: p,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    cfg.Issuer,
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}

type Session struct {
	Profile   Profile
	TokenID   string
	ExpiresAt time.Time
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	if !ok {
		return Session{}, ErrUnauthenticated
	}
	return s, nil
}
