package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akravets/talkroom-server/internal/service/people"
	"github.com/akravets/talkroom-server/internal/store"
)

// PersonHandlers provides HTTP handlers for person CRUD endpoints.
type PersonHandlers struct {
	people *people.Service
	log    *zerolog.Logger
}

// NewPersonHandlers creates a new person handlers instance.
func NewPersonHandlers(svc *people.Service, logger *zerolog.Logger) *PersonHandlers {
	return &PersonHandlers{people: svc, log: logger}
}

// List handles listing all persons.
// GET /users/all
func (h *PersonHandlers) List(c *gin.Context) {
	persons, err := h.people.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toPersonResponses(persons))
}

// Get handles fetching one person by ID.
// GET /users/:id
func (h *PersonHandlers) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	person, err := h.people.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toPersonResponse(person))
}

// Update handles full-replacement save of a person.
// PUT /users/
func (h *PersonHandlers) Update(c *gin.Context) {
	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid person payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if _, err := h.people.Save(c.Request.Context(), req.toPerson()); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles removing a person by ID. The delete is idempotent,
// removing an absent ID still responds 200.
// DELETE /users/:id
func (h *PersonHandlers) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.people.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}

// Patch handles the partial update of a person.
// PATCH /users/
func (h *PersonHandlers) Patch(c *gin.Context) {
	var patch store.PersonPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.log.Debug().Err(err).Msg("invalid person patch payload")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	person, err := h.people.Patch(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toPersonResponse(person))
}

// pathID parses the :id path parameter, responding 400 on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "invalid id",
			Details: c.Param("id"),
		})
		return 0, false
	}
	return id, true
}
