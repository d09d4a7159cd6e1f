package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akravets/talkroom-server/internal/store"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Type    string `json:"type,omitempty"`
}

// violationsBody renders a validation error as a list of single-entry
// objects: [{"<field>": "<message>. Actual value: <value>"}].
func violationsBody(ve *store.ValidationError) []map[string]string {
	body := make([]map[string]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		body = append(body, map[string]string{
			v.Field: fmt.Sprintf("%s. Actual value: %v", v.Message, v.Value),
		})
	}
	return body
}

// respondError translates service errors into the boundary responses:
// absence becomes 404, failed field constraints become a 400 violation
// list, anything else is a logged 500.
func respondError(c *gin.Context, logger *zerolog.Logger, err error) {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, violationsBody(ve))
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "not found, please check id",
			Details: err.Error(),
		})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "internal server error",
			Type:    fmt.Sprintf("%T", err),
		})
	}
}
