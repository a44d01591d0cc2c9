package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/ahassan/unisync/internal/app/auth"
	"github.com/ahassan/unisync/internal/app/models/dto"
	"github.com/ahassan/unisync/internal/pkg/auth"
)

// AuthMiddleware guards routes that require a signed-in principal.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	session    *appauth.Session
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, session *appauth.Session) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		session:    session,
	}
}

// JWTAuth validates the bearer token and checks it belongs to the
// principal currently signed in to the session.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		// The engine serves a single signed-in principal at a time; a
		// token for anyone else means the session was replaced.
		if m.session.PrincipalID() != claims.PrincipalID {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Session mismatch")
			errorDetail = errorDetail.WithDetails("Token does not match the active session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set("principalID", claims.PrincipalID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
