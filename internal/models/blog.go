package models

import "time"

type BlogInstance struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	OrganizationID uint64    `gorm:"not null;index" json:"organization_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug           string    `gorm:"type:varchar(255);not null" json:"slug"`
	Description    *string   `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Posts        []BlogPost   `gorm:"foreignKey:BlogInstanceID" json:"-"`
}

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
)

type BlogPost struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	BlogInstanceID uint64     `gorm:"not null" json:"blog_instance_id"`
	Title          string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug           string     `gorm:"type:varchar(255);not null" json:"slug"`
	Content        *string    `gorm:"type:text" json:"content"`
	Excerpt        *string    `gorm:"type:text" json:"excerpt"`
	Visibility     Visibility `gorm:"type:varchar(20);not null" json:"visibility"`
	CreatedBy      uint64     `gorm:"not null" json:"created_by"`
	PublishedAt    *time.Time `json:"published_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	BlogInstance BlogInstance `gorm:"foreignKey:BlogInstanceID" json:"-"`
	Creator      User         `gorm:"foreignKey:CreatedBy" json:"-"`
}

// Status derives the publication state at the given instant. A post whose
// published_at equals now counts as published.
func (p BlogPost) Status(now time.Time) PostStatus {
	switch {
	case p.PublishedAt == nil:
		return PostStatusDraft
	case p.PublishedAt.After(now):
		return PostStatusScheduled
	default:
		return PostStatusPublished
	}
}
