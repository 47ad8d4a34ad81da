package dto

import "github.com/yukikurage/backoffice-api/internal/optional"

// CreateNotesFolderRequest is the input of createNotesFolder
type CreateNotesFolderRequest struct {
	OrganizationID uint64  `json:"organization_id" binding:"required"`
	ParentID       *uint64 `json:"parent_id"`
	Name           string  `json:"name" binding:"required,max=255"`
	CreatedBy      *uint64 `json:"created_by"`
}

// CreateNoteRequest is the input of createNote
type CreateNoteRequest struct {
	OrganizationID uint64  `json:"organization_id" binding:"required"`
	FolderID       *uint64 `json:"folder_id"`
	Title          string  `json:"title" binding:"required,max=255"`
	Content        *string `json:"content"`
	CreatedBy      *uint64 `json:"created_by"`
}

// UpdateNoteRequest is the input of updateNote. A null folder_id moves the
// note to the organization root.
type UpdateNoteRequest struct {
	ID       uint64                 `json:"id" binding:"required"`
	FolderID optional.Field[uint64] `json:"folder_id"`
	Title    optional.Field[string] `json:"title"`
	Content  optional.Field[string] `json:"content"`
}

// NotesFolderQuery lists root folders when parentId is null or omitted
type NotesFolderQuery struct {
	OrganizationID uint64  `json:"organizationId" binding:"required"`
	ParentID       *uint64 `json:"parentId"`
}

// NoteQuery distinguishes an omitted folderId (every note) from an explicit
// null (root notes only)
type NoteQuery struct {
	OrganizationID uint64                 `json:"organizationId" binding:"required"`
	FolderID       optional.Field[uint64] `json:"folderId"`
}
