package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akravets/talkroom-server/internal/service/roles"
	"github.com/akravets/talkroom-server/internal/store"
)

// RoleHandlers provides HTTP handlers for role CRUD endpoints.
type RoleHandlers struct {
	roles *roles.Service
	log   *zerolog.Logger
}

// NewRoleHandlers creates a new role handlers instance.
func NewRoleHandlers(svc *roles.Service, logger *zerolog.Logger) *RoleHandlers {
	return &RoleHandlers{roles: svc, log: logger}
}

// List handles listing all roles.
// GET /role/
func (h *RoleHandlers) List(c *gin.Context) {
	all, err := h.roles.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]RoleResponse, 0, len(all))
	for _, r := range all {
		out = append(out, toRoleResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles fetching one role by ID.
// GET /role/:id
func (h *RoleHandlers) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	role, err := h.roles.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toRoleResponse(role))
}

// Create handles creating a role.
// POST /role/
func (h *RoleHandlers) Create(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid role payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	created, err := h.roles.Save(c.Request.Context(), &store.Role{Name: req.Name})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toRoleResponse(created))
}

// Update handles full-replacement save of a role.
// PUT /role/
func (h *RoleHandlers) Update(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid role payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if _, err := h.roles.Save(c.Request.Context(), &store.Role{ID: req.ID, Name: req.Name}); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles removing a role by ID, idempotent.
// DELETE /role/:id
func (h *RoleHandlers) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.roles.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}

// Patch handles the partial update of a role.
// PATCH /role/
func (h *RoleHandlers) Patch(c *gin.Context) {
	var patch store.RolePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.log.Debug().Err(err).Msg("invalid role patch payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	role, err := h.roles.Patch(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toRoleResponse(role))
}
