package models

import "time"

// NotesFolder is a node in an organization's folder tree. ParentID nil means
// the folder sits at the organization root. A parent always belongs to the
// same organization as its children.
type NotesFolder struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	OrganizationID uint64    `gorm:"not null" json:"organization_id"`
	ParentID       *uint64   `json:"parent_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedBy      uint64    `gorm:"not null" json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Organization Organization  `gorm:"foreignKey:OrganizationID" json:"-"`
	Parent       *NotesFolder  `gorm:"foreignKey:ParentID" json:"-"`
	Children     []NotesFolder `gorm:"foreignKey:ParentID" json:"-"`
	Creator      User          `gorm:"foreignKey:CreatedBy" json:"-"`
}

type Note struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	FolderID       *uint64   `gorm:"index" json:"folder_id"`
	OrganizationID uint64    `gorm:"not null;index" json:"organization_id"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Content        *string   `gorm:"type:text" json:"content"`
	CreatedBy      uint64    `gorm:"not null" json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Folder       *NotesFolder `gorm:"foreignKey:FolderID" json:"-"`
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Creator      User         `gorm:"foreignKey:CreatedBy" json:"-"`
}
