package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/backoffice-api/internal/models"
	"github.com/yukikurage/backoffice-api/internal/optional"
	"github.com/yukikurage/backoffice-api/internal/repository"
)

// NotesService manages an organization's folder tree and notes.
type NotesService struct {
	repos *repository.Repositories
}

// NewNotesService creates a new NotesService.
func NewNotesService(repos *repository.Repositories) *NotesService {
	return &NotesService{repos: repos}
}

// CreateNotesFolderInput represents parameters to create a folder. A nil
// ParentID places the folder at the organization root.
type CreateNotesFolderInput struct {
	OrganizationID uint64
	ParentID       *uint64
	Name           string
	CreatedBy      uint64
}

// CreateNotesFolder creates a folder. Checks run in order (organization,
// creator, parent, parent tenancy) and the first failure aborts the insert.
func (s *NotesService) CreateNotesFolder(ctx context.Context, input CreateNotesFolderInput) (*models.NotesFolder, error) {
	if input.Name == "" {
		return nil, invalid("name", "is required")
	}

	folder := &models.NotesFolder{
		OrganizationID: input.OrganizationID,
		ParentID:       input.ParentID,
		Name:           input.Name,
		CreatedBy:      input.CreatedBy,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := ensureExists(ctx, "organization", input.OrganizationID, tx.Organizations.FindByIDForUpdate); err != nil {
			return err
		}
		if _, err := ensureExists(ctx, "user", input.CreatedBy, tx.Users.FindByID); err != nil {
			return err
		}
		if input.ParentID != nil {
			if err := ensureFolderInOrganization(ctx, tx, "parent folder", *input.ParentID, input.OrganizationID); err != nil {
				return err
			}
		}
		if err := tx.Notes.CreateFolder(ctx, folder); err != nil {
			return writeError("create", "notes folder", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folder, nil
}

// ListNotesFolders returns the direct children of parentID, or the root
// folders when parentID is nil.
func (s *NotesService) ListNotesFolders(ctx context.Context, organizationID uint64, parentID *uint64) ([]models.NotesFolder, error) {
	folders, err := s.repos.Notes.ListFolders(ctx, organizationID, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes folders: %w", err)
	}
	return folders, nil
}

// CreateNoteInput represents parameters to create a note. A nil FolderID
// files the note at the organization root.
type CreateNoteInput struct {
	OrganizationID uint64
	FolderID       *uint64
	Title          string
	Content        *string
	CreatedBy      uint64
}

// CreateNote creates a note after checking the organization, the creator and
// the folder.
func (s *NotesService) CreateNote(ctx context.Context, input CreateNoteInput) (*models.Note, error) {
	if input.Title == "" {
		return nil, invalid("title", "is required")
	}

	note := &models.Note{
		OrganizationID: input.OrganizationID,
		FolderID:       input.FolderID,
		Title:          input.Title,
		Content:        input.Content,
		CreatedBy:      input.CreatedBy,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := ensureExists(ctx, "organization", input.OrganizationID, tx.Organizations.FindByIDForUpdate); err != nil {
			return err
		}
		if _, err := ensureExists(ctx, "user", input.CreatedBy, tx.Users.FindByID); err != nil {
			return err
		}
		if input.FolderID != nil {
			if err := ensureFolderInOrganization(ctx, tx, "folder", *input.FolderID, input.OrganizationID); err != nil {
				return err
			}
		}
		if err := tx.Notes.CreateNote(ctx, note); err != nil {
			return writeError("create", "note", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes lists an organization's notes. An omitted folder selects every
// note, an explicit null selects root notes and a value selects one folder.
func (s *NotesService) ListNotes(ctx context.Context, organizationID uint64, folder optional.Field[uint64]) ([]models.Note, error) {
	filter := repository.NoteFilter{
		OrganizationID: organizationID,
		RootOnly:       folder.IsNull(),
	}
	if id, ok := folder.Get(); ok {
		filter.FolderID = &id
	}

	notes, err := s.repos.Notes.ListNotes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// UpdateNoteInput carries a sparse set of note changes. A null FolderID
// moves the note to the organization root.
type UpdateNoteInput struct {
	ID       uint64
	FolderID optional.Field[uint64]
	Title    optional.Field[string]
	Content  optional.Field[string]
}

// UpdateNote merges the provided fields over the stored note.
func (s *NotesService) UpdateNote(ctx context.Context, input UpdateNoteInput) (*models.Note, error) {
	if err := requireNonEmpty("title", input.Title); err != nil {
		return nil, err
	}

	var note *models.Note
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		var err error
		note, err = ensureExists(ctx, "note", input.ID, tx.Notes.FindNoteByID)
		if err != nil {
			return err
		}

		if folderID, ok := input.FolderID.Get(); ok {
			if err := ensureFolderInOrganization(ctx, tx, "folder", folderID, note.OrganizationID); err != nil {
				return err
			}
		}

		input.FolderID.ApplyNullable(&note.FolderID)
		input.Title.Apply(&note.Title)
		input.Content.ApplyNullable(&note.Content)

		if err := tx.Notes.UpdateNote(ctx, note); err != nil {
			return writeError("update", "note", err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

func ensureFolderInOrganization(ctx context.Context, tx *repository.Repositories, entity string, folderID, organizationID uint64) error {
	folder, err := ensureExists(ctx, entity, folderID, tx.Notes.FindFolderByID)
	if err != nil {
		return err
	}
	if folder.OrganizationID != organizationID {
		return &CrossTenantError{Entity: entity, ID: folderID, OrganizationID: organizationID}
	}
	return nil
}
