package database

import (
	"fmt"
	"strings"

	"github.com/yukikurage/backoffice-api/internal/logs"
	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes backing the ordered list queries.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns []string
	}{
		// Sibling ordering
		{"modules", "idx_modules_course_order", []string{"course_id", "order_index"}},
		{"lessons", "idx_lessons_module_order", []string{"module_id", "order_index"}},

		// Newest-first post listing
		{"blog_posts", "idx_blog_posts_instance_created", []string{"blog_instance_id", "created_at"}},

		// Folder tree navigation
		{"notes_folders", "idx_notes_folders_org_parent", []string{"organization_id", "parent_id"}},
		{"notes", "idx_notes_org_folder", []string{"organization_id", "folder_id"}},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			logs.Logger.Debugf("Index %s already exists, skipping", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, strings.Join(idx.columns, ", "))
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		logs.Logger.Infof("Created index %s on %s(%s)", idx.name, idx.table, strings.Join(idx.columns, ", "))
	}

	return nil
}
