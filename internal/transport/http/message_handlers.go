package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akravets/talkroom-server/internal/service/messages"
	"github.com/akravets/talkroom-server/internal/store"
)

// MessageHandlers provides HTTP handlers for message CRUD endpoints.
type MessageHandlers struct {
	messages *messages.Service
	log      *zerolog.Logger
}

// NewMessageHandlers creates a new message handlers instance.
func NewMessageHandlers(svc *messages.Service, logger *zerolog.Logger) *MessageHandlers {
	return &MessageHandlers{messages: svc, log: logger}
}

// List handles listing all messages.
// GET /message/
func (h *MessageHandlers) List(c *gin.Context) {
	all, err := h.messages.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]MessageResponse, 0, len(all))
	for _, m := range all {
		out = append(out, toMessageResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles fetching one message by ID.
// GET /message/:id
func (h *MessageHandlers) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	msg, err := h.messages.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toMessageResponse(msg))
}

// Create handles creating a message.
// POST /message/
func (h *MessageHandlers) Create(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid message payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	msg := req.toMessage()
	msg.ID = 0
	created, err := h.messages.Save(c.Request.Context(), msg)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toMessageResponse(created))
}

// Update handles full-replacement save of a message.
// PUT /message/
func (h *MessageHandlers) Update(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid message payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if _, err := h.messages.Save(c.Request.Context(), req.toMessage()); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles removing a message by ID, idempotent.
// DELETE /message/:id
func (h *MessageHandlers) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.messages.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}

// Patch handles the partial update of a message.
// PATCH /message/
func (h *MessageHandlers) Patch(c *gin.Context) {
	var patch store.MessagePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.log.Debug().Err(err).Msg("invalid message patch payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	msg, err := h.messages.Patch(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toMessageResponse(msg))
}
