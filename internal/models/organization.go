package models

import "time"

type Organization struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Members       []OrganizationUser `gorm:"foreignKey:OrganizationID" json:"-"`
	LmsInstances  []LmsInstance      `gorm:"foreignKey:OrganizationID" json:"-"`
	BlogInstances []BlogInstance     `gorm:"foreignKey:OrganizationID" json:"-"`
	NotesFolders  []NotesFolder      `gorm:"foreignKey:OrganizationID" json:"-"`
	Notes         []Note             `gorm:"foreignKey:OrganizationID" json:"-"`
}
