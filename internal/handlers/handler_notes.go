package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
	"github.com/dekinnovations/dashboard_backend/internal/middleware"
)

// noteHandler handles HTTP requests for client notes.
type noteHandler struct {
	noteService portssvc.NoteSvcFacade
}

func newNoteHandler(ns portssvc.NoteSvcFacade) *noteHandler {
	return &noteHandler{noteService: ns}
}

// registerNoteRoutes registers the nested note routes under clients.
func registerNoteRoutes(rg *gin.RouterGroup, noteService portssvc.NoteSvcFacade) {
	h := newNoteHandler(noteService)

	notes := rg.Group("/clients/:id/notes")
	{
		notes.GET("", h.listNotes)
		notes.POST("", h.createNote)
		notes.PUT("/:noteID", h.updateNote)
		notes.DELETE("/:noteID", h.deleteNote)
	}
}

// listNotes godoc
// @Summary List client notes
// @Description Lists a client's notes, newest first.
// @Tags notes
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} dto.NoteResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/notes [get]
func (h *noteHandler) listNotes(c *gin.Context) {
	notes, err := h.noteService.ListNotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list notes")
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponses(notes))
}

// createNote godoc
// @Summary Add a note
// @Description Attaches a note to a client record.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param note body dto.CreateNoteRequest true "Note content"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/notes [post]
func (h *noteHandler) createNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	authorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), c.Param("id"), req, authorUserID)
	if err != nil {
		respondError(c, err, "Failed to create note")
		return
	}
	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// updateNote godoc
// @Summary Edit a note
// @Description Replaces a note's content.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param noteID path string true "Note ID"
// @Param note body dto.UpdateNoteRequest true "Note content"
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/notes/{noteID} [put]
func (h *noteHandler) updateNote(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), c.Param("id"), c.Param("noteID"), req)
	if err != nil {
		respondError(c, err, "Failed to update note")
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// deleteNote godoc
// @Summary Delete a note
// @Description Removes a note from a client record.
// @Tags notes
// @Produce json
// @Param id path string true "Client ID"
// @Param noteID path string true "Note ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/notes/{noteID} [delete]
func (h *noteHandler) deleteNote(c *gin.Context) {
	if err := h.noteService.DeleteNote(c.Request.Context(), c.Param("id"), c.Param("noteID")); err != nil {
		respondError(c, err, "Failed to delete note")
		return
	}
	c.Status(http.StatusNoContent)
}
