package models

import "time"

type LmsInstance struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	OrganizationID uint64    `gorm:"not null;index" json:"organization_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug           string    `gorm:"type:varchar(255);not null" json:"slug"`
	Description    *string   `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Courses      []Course     `gorm:"foreignKey:LmsInstanceID" json:"-"`
}

type Course struct {
	ID            uint64     `gorm:"primarykey" json:"id"`
	LmsInstanceID uint64     `gorm:"not null;index" json:"lms_instance_id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug          string     `gorm:"type:varchar(255);not null" json:"slug"`
	Description   *string    `gorm:"type:text" json:"description"`
	Content       *string    `gorm:"type:text" json:"content"`
	Visibility    Visibility `gorm:"type:varchar(20);not null" json:"visibility"`
	CreatedBy     uint64     `gorm:"not null" json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	LmsInstance LmsInstance `gorm:"foreignKey:LmsInstanceID" json:"-"`
	Creator     User        `gorm:"foreignKey:CreatedBy" json:"-"`
	Modules     []Module    `gorm:"foreignKey:CourseID" json:"-"`
}

// Module is an ordered section of a course. OrderIndex is the sibling
// position; lists are returned ascending by it.
type Module struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	CourseID    uint64    `gorm:"not null" json:"course_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string    `gorm:"type:varchar(255);not null" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	OrderIndex  int       `gorm:"not null" json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Course  Course   `gorm:"foreignKey:CourseID" json:"-"`
	Lessons []Lesson `gorm:"foreignKey:ModuleID" json:"-"`
}

type Lesson struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	ModuleID   uint64    `gorm:"not null" json:"module_id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Slug       string    `gorm:"type:varchar(255);not null" json:"slug"`
	Content    *string   `gorm:"type:text" json:"content"`
	OrderIndex int       `gorm:"not null" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Module Module `gorm:"foreignKey:ModuleID" json:"-"`
}
