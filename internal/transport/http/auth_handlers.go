package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akravets/talkroom-server/internal/auth"
	"github.com/akravets/talkroom-server/internal/store"
)

// AuthHandlers provides the login and sign-up endpoints.
type AuthHandlers struct {
	authService *auth.Service
	log         *zerolog.Logger
}

// NewAuthHandlers creates a new auth handlers instance.
func NewAuthHandlers(authService *auth.Service, logger *zerolog.Logger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		log:         logger,
	}
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response body. The same
// token is also written to the Authorization response header with the
// Bearer prefix.
type AuthResponse struct {
	Token string `json:"token"`
}

// Login handles credential verification and token issuance.
// POST /login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid login request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid credentials"})
			return
		}
		h.log.Error().Err(err).Str("username", req.Username).Msg("failed to login")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
		return
	}

	h.log.Info().Str("username", req.Username).Msg("user logged in")
	c.Header("Authorization", auth.TokenPrefix+token)
	c.JSON(http.StatusOK, AuthResponse{Token: token})
}

// SignUp handles user registration. A taken username is rejected with
// 400 echoing the submitted, non-persisted person.
// POST /users/sign-up
func (h *AuthHandlers) SignUp(c *gin.Context) {
	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid sign-up request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	person := req.toPerson()
	created, err := h.authService.SignUp(c.Request.Context(), person)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			c.JSON(http.StatusBadRequest, toPersonResponse(person))
			return
		}
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, violationsBody(ve))
			return
		}
		h.log.Error().Err(err).Str("username", req.Username).Msg("failed to sign up")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
		return
	}

	h.log.Info().Str("username", created.Username).Int64("person_id", created.ID).Msg("user signed up")
	c.JSON(http.StatusCreated, toPersonResponse(created))
}
