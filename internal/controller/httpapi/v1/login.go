package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/apocaliss92/reolink-osd-sync/config"
	"github.com/apocaliss92/reolink-osd-sync/internal/entity/dto/v1"
)

// LoginRoute issues and verifies the API's bearer tokens.
type LoginRoute struct {
	cfg *config.Config
}

func NewLoginRoute(cfg *config.Config) *LoginRoute {
	return &LoginRoute{cfg: cfg}
}

// Login exchanges the admin credentials for a signed JWT.
func (r *LoginRoute) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: "invalid request", Message: "invalid request"})

		return
	}

	if req.Username != r.cfg.Auth.AdminUsername || req.Password != r.cfg.Auth.AdminPassword {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: "invalid credentials", Message: "invalid credentials"})

		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   req.Username,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(r.cfg.Auth.JWTExpiration)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(r.cfg.Auth.JWTKey))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: "token signing failed", Message: "token signing failed"})

		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: signed})
}

// JWTAuthMiddleware rejects requests without a valid bearer token.
func (r *LoginRoute) JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: "missing bearer token", Message: "missing bearer token"})

			return
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(r.cfg.Auth.JWTKey), nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: "invalid token", Message: "invalid token"})

			return
		}

		c.Next()
	}
}
