package models

import "time"

// OwnerKind classifies which instance type a category or tag belongs to.
type OwnerKind string

const (
	OwnerUnowned OwnerKind = "unowned"
	OwnerLms     OwnerKind = "lms"
	OwnerBlog    OwnerKind = "blog"
	// OwnerShared marks a row that references both an LMS and a blog instance.
	// Storage allows it; callers must handle it explicitly.
	OwnerShared OwnerKind = "shared"
)

// TaxonomyOwner is the tagged view over the two nullable instance columns.
type TaxonomyOwner struct {
	Kind           OwnerKind `json:"kind"`
	LmsInstanceID  uint64    `json:"lms_instance_id,omitempty"`
	BlogInstanceID uint64    `json:"blog_instance_id,omitempty"`
}

func ownerOf(lmsID, blogID *uint64) TaxonomyOwner {
	switch {
	case lmsID != nil && blogID != nil:
		return TaxonomyOwner{Kind: OwnerShared, LmsInstanceID: *lmsID, BlogInstanceID: *blogID}
	case lmsID != nil:
		return TaxonomyOwner{Kind: OwnerLms, LmsInstanceID: *lmsID}
	case blogID != nil:
		return TaxonomyOwner{Kind: OwnerBlog, BlogInstanceID: *blogID}
	default:
		return TaxonomyOwner{Kind: OwnerUnowned}
	}
}

type Category struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug           string    `gorm:"type:varchar(255);not null" json:"slug"`
	Description    *string   `gorm:"type:text" json:"description"`
	LmsInstanceID  *uint64   `gorm:"index" json:"lms_instance_id"`
	BlogInstanceID *uint64   `gorm:"index" json:"blog_instance_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	LmsInstance  *LmsInstance  `gorm:"foreignKey:LmsInstanceID" json:"-"`
	BlogInstance *BlogInstance `gorm:"foreignKey:BlogInstanceID" json:"-"`
}

func (c Category) Owner() TaxonomyOwner {
	return ownerOf(c.LmsInstanceID, c.BlogInstanceID)
}

type Tag struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug           string    `gorm:"type:varchar(255);not null" json:"slug"`
	LmsInstanceID  *uint64   `gorm:"index" json:"lms_instance_id"`
	BlogInstanceID *uint64   `gorm:"index" json:"blog_instance_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	LmsInstance  *LmsInstance  `gorm:"foreignKey:LmsInstanceID" json:"-"`
	BlogInstance *BlogInstance `gorm:"foreignKey:BlogInstanceID" json:"-"`
}

func (t Tag) Owner() TaxonomyOwner {
	return ownerOf(t.LmsInstanceID, t.BlogInstanceID)
}
