package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akravets/talkroom-server/internal/auth"
)

const (
	// ContextKeyUsername is the context key for the authenticated
	// caller's username.
	ContextKeyUsername = "username"
	// HeaderRequestID carries the per-request correlation ID.
	HeaderRequestID = "X-Request-ID"
)

// Authenticate validates a bearer token when one is presented.
// A missing header or one without the Bearer scheme passes through
// anonymously; route-level access control decides whether an anonymous
// request is allowed. A presented but invalid token aborts with 401.
// Every request is authenticated independently from its token, no
// server-side session exists.
func Authenticate(authService *auth.Service, logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, auth.TokenPrefix) {
			c.Next()
			return
		}

		token := strings.TrimPrefix(header, auth.TokenPrefix)
		claims, err := authService.ValidateToken(token)
		if err != nil {
			logger.Debug().Err(err).Msg("invalid token")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextKeyUsername, claims.Subject)
		c.Next()
	}
}

// RequireIdentity aborts anonymous requests with 401. It runs after
// Authenticate on every route except login and sign-up.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextKeyUsername); !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestID attaches a correlation ID to the request context and
// response header, generating one when the client didn't send any.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Set(HeaderRequestID, id)
		c.Next()
	}
}

// Logger logs each HTTP request after it completes.
func Logger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("request_id", c.GetString(HeaderRequestID)).
			Msg("http request")
	}
}

// CORS applies permissive defaults on all routes.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Expose-Headers", "Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
