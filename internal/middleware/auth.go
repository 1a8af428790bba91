package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"navio/internal/apperror"
	"navio/internal/models"
)

type userCtxKey struct{}

// Authenticator issues and verifies HS256 bearer tokens carrying {id, email}.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

func NewAuthenticator(secret string, ttl time.Duration, logger *zap.Logger) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: ttl, logger: logger}
}

// SignToken returns a signed token for user that expires after the configured TTL.
func (a *Authenticator) SignToken(user models.AuthUser) (string, error) {
	issued := time.Now()
	claims := models.Claims{
		ID:    user.ID,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(a.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Authenticator) ParseToken(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is what we expect
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// OptionalAuth attaches the caller when a valid token is present and
// otherwise lets the request through unauthenticated.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok, ok := bearerToken(c); ok {
			if claims, err := a.ParseToken(tok); err == nil {
				setUser(c, claims)
			} else {
				a.logger.Debug("Ignoring invalid token on optional route", zap.Error(err))
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid token.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := bearerToken(c)
		if !ok {
			_ = c.Error(apperror.Unauthorized("Authentication required"))
			c.Abort()
			return
		}

		claims, err := a.ParseToken(tok)
		if err != nil {
			a.logger.Info("Rejected bearer token", zap.String("path", c.FullPath()), zap.Error(err))
			_ = c.Error(apperror.Unauthorized("Invalid or expired token"))
			c.Abort()
			return
		}

		setUser(c, claims)
		c.Next()
	}
}

// UserFrom returns the authenticated caller of the request, if any.
func UserFrom(c *gin.Context) (models.AuthUser, bool) {
	return UserFromContext(c.Request.Context())
}

func UserFromContext(ctx context.Context) (models.AuthUser, bool) {
	u, ok := ctx.Value(userCtxKey{}).(models.AuthUser)
	return u, ok
}

func setUser(c *gin.Context, claims *models.Claims) {
	user := models.AuthUser{ID: claims.ID, Email: claims.Email}
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userCtxKey{}, user))
}

func bearerToken(c *gin.Context) (string, bool) {
	tok, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	tok = strings.TrimSpace(tok)
	return tok, ok && tok != ""
}
