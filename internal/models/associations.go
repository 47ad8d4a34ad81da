package models

// Join tables linking courses and blog posts to the shared vocabulary.
// They are part of the schema only; no operation writes them yet.

type CourseCategory struct {
	CourseID   uint64 `gorm:"primarykey" json:"course_id"`
	CategoryID uint64 `gorm:"primarykey" json:"category_id"`

	Course   Course   `gorm:"foreignKey:CourseID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

type CourseTag struct {
	CourseID uint64 `gorm:"primarykey" json:"course_id"`
	TagID    uint64 `gorm:"primarykey" json:"tag_id"`

	Course Course `gorm:"foreignKey:CourseID" json:"-"`
	Tag    Tag    `gorm:"foreignKey:TagID" json:"-"`
}

type BlogPostCategory struct {
	BlogPostID uint64 `gorm:"primarykey" json:"blog_post_id"`
	CategoryID uint64 `gorm:"primarykey" json:"category_id"`

	BlogPost BlogPost `gorm:"foreignKey:BlogPostID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

type BlogPostTag struct {
	BlogPostID uint64 `gorm:"primarykey" json:"blog_post_id"`
	TagID      uint64 `gorm:"primarykey" json:"tag_id"`

	BlogPost BlogPost `gorm:"foreignKey:BlogPostID" json:"-"`
	Tag      Tag      `gorm:"foreignKey:TagID" json:"-"`
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Organization{},
		&OrganizationUser{},
		&LmsInstance{},
		&BlogInstance{},
		&Course{},
		&Module{},
		&Lesson{},
		&BlogPost{},
		&Category{},
		&Tag{},
		&NotesFolder{},
		&Note{},
		&CourseCategory{},
		&CourseTag{},
		&BlogPostCategory{},
		&BlogPostTag{},
	}
}
