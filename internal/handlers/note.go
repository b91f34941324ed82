package handlers

import (
	"net/http"

	"github.com/AvishekRimal/student-planner/internal/auth"
	dom "github.com/AvishekRimal/student-planner/internal/domain"
	"github.com/AvishekRimal/student-planner/internal/dto"
	"github.com/AvishekRimal/student-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	svc *service.NoteService
}

func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// Create godoc
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateNoteRequest  true  "Note body"
// @Success      201   {object}  dto.NoteResponse
// @Failure      400   {object}  map[string]string
// @Router       /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), req.Title, req.Content, req.Category)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, noteToResponse(n))
}

// List godoc
// @Summary      List notes, most recently touched first
// @Tags         notes
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListNotesResponse
// @Failure      500  {object}  map[string]string
// @Router       /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.NoteResponse, len(list))
	for i := range list {
		out[i] = noteToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListNotesResponse{Notes: out})
}

// GetByID godoc
// @Summary      Get a note by ID
// @Tags         notes
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Note ID"
// @Success      200  {object}  dto.NoteResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [get]
func (h *NoteHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	n, err := h.svc.GetByID(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, noteToResponse(n))
}

// Update godoc
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Note ID"
// @Param        body  body      dto.UpdateNoteRequest  true  "Partial update"
// @Success      200   {object}  dto.NoteResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id, service.NotePatch{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, noteToResponse(n))
}

// Delete godoc
// @Summary      Delete a note
// @Tags         notes
// @Security     CookieAuth
// @Param        id   path  int  true  "Note ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func noteToResponse(n dom.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Category:  n.Category,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
