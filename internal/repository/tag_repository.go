package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// NewTagRepository binds the generic repository to the tags table.
func NewTagRepository(db *sqlx.DB) *Repository[models.TagRow] {
	return MustNew[models.TagRow](db, Descriptor{
		Table:    "tags",
		IDColumn: "id_tag",
		Columns: []string{
			"id_tag", "name", "slug", "color", "created_at", "updated_at",
		},
		SortColumns:  models.TagSortColumns,
		DefaultOrder: "name ASC",
	})
}

// NewCourseTagRepository binds the generic repository to course_tags.
func NewCourseTagRepository(db *sqlx.DB) *Repository[models.CourseTagRow] {
	return MustNew[models.CourseTagRow](db, Descriptor{
		Table:    "course_tags",
		IDColumn: "id_course_tag",
		Columns: []string{
			"id_course_tag", "id_course", "id_tag", "created_at",
		},
		SortColumns:  models.CourseTagSortColumns,
		DefaultOrder: "created_at DESC",
	})
}
