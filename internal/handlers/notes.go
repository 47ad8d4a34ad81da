package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/backoffice-api/internal/dto"
	"github.com/yukikurage/backoffice-api/internal/services"
)

type NotesHandler struct {
	service *services.NotesService
}

func NewNotesHandler(service *services.NotesService) *NotesHandler {
	return &NotesHandler{service: service}
}

// CreateNotesFolder creates a folder. created_by defaults to the caller.
func (h *NotesHandler) CreateNotesFolder(c *gin.Context) {
	var req dto.CreateNotesFolderRequest
	if !bindInput(c, &req) {
		return
	}
	createdBy, ok := resolveCreator(c, req.CreatedBy)
	if !ok {
		return
	}

	folder, err := h.service.CreateNotesFolder(c.Request.Context(), services.CreateNotesFolderInput{
		OrganizationID: req.OrganizationID,
		ParentID:       req.ParentID,
		Name:           req.Name,
		CreatedBy:      createdBy,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, folder)
}

func (h *NotesHandler) ListNotesFolders(c *gin.Context) {
	var req dto.NotesFolderQuery
	if !bindInput(c, &req) {
		return
	}

	folders, err := h.service.ListNotesFolders(c.Request.Context(), req.OrganizationID, req.ParentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, folders)
}

// CreateNote creates a note. created_by defaults to the caller.
func (h *NotesHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if !bindInput(c, &req) {
		return
	}
	createdBy, ok := resolveCreator(c, req.CreatedBy)
	if !ok {
		return
	}

	note, err := h.service.CreateNote(c.Request.Context(), services.CreateNoteInput{
		OrganizationID: req.OrganizationID,
		FolderID:       req.FolderID,
		Title:          req.Title,
		Content:        req.Content,
		CreatedBy:      createdBy,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *NotesHandler) ListNotes(c *gin.Context) {
	var req dto.NoteQuery
	if !bindInput(c, &req) {
		return
	}

	notes, err := h.service.ListNotes(c.Request.Context(), req.OrganizationID, req.FolderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// UpdateNote applies a partial update, including moving between folders
func (h *NotesHandler) UpdateNote(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if !bindInput(c, &req) {
		return
	}

	note, err := h.service.UpdateNote(c.Request.Context(), services.UpdateNoteInput{
		ID:       req.ID,
		FolderID: req.FolderID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}
