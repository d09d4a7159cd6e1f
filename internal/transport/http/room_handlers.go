package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akravets/talkroom-server/internal/service/rooms"
	"github.com/akravets/talkroom-server/internal/store"
)

// RoomHandlers provides HTTP handlers for room CRUD endpoints.
type RoomHandlers struct {
	rooms *rooms.Service
	log   *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(svc *rooms.Service, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{rooms: svc, log: logger}
}

// List handles listing all rooms.
// GET /room/
func (h *RoomHandlers) List(c *gin.Context) {
	all, err := h.rooms.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]RoomResponse, 0, len(all))
	for _, r := range all {
		out = append(out, toRoomResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles fetching one room by ID.
// GET /room/:id
func (h *RoomHandlers) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := h.rooms.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(room))
}

// Create handles creating a room.
// POST /room/
func (h *RoomHandlers) Create(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid room payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	created, err := h.rooms.Save(c.Request.Context(), &store.Room{Name: req.Name})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.log.Info().Str("room_name", created.Name).Int64("room_id", created.ID).Msg("room created")
	c.JSON(http.StatusCreated, toRoomResponse(created))
}

// Update handles full-replacement save of a room.
// PUT /room/
func (h *RoomHandlers) Update(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid room payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if _, err := h.rooms.Save(c.Request.Context(), &store.Room{ID: req.ID, Name: req.Name}); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles removing a room by ID, idempotent.
// DELETE /room/:id
func (h *RoomHandlers) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.rooms.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}

// Patch handles the partial update of a room.
// PATCH /room/
func (h *RoomHandlers) Patch(c *gin.Context) {
	var patch store.RoomPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.log.Debug().Err(err).Msg("invalid room patch payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	room, err := h.rooms.Patch(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(room))
}
