package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// NewLessonRepository binds the generic repository to the lessons table.
func NewLessonRepository(db *sqlx.DB) *Repository[models.LessonRow] {
	return MustNew[models.LessonRow](db, Descriptor{
		Table:    "lessons",
		IDColumn: "id_lesson",
		Columns: []string{
			"id_lesson", "id_section", "title", "lesson_type", "position",
			"duration_seconds", "content", "video_url", "ai_generated_notes",
			"created_at", "updated_at",
		},
		SortColumns:  models.LessonSortColumns,
		DefaultOrder: "position ASC",
	})
}

// NewLessonResourceRepository binds the generic repository to lesson_resources.
func NewLessonResourceRepository(db *sqlx.DB) *Repository[models.LessonResourceRow] {
	return MustNew[models.LessonResourceRow](db, Descriptor{
		Table:    "lesson_resources",
		IDColumn: "id_resource",
		Columns: []string{
			"id_resource", "id_lesson", "name", "mime_type", "size_bytes",
			"url", "created_at",
		},
		SortColumns:  models.LessonResourceSortColumns,
		DefaultOrder: "created_at DESC",
	})
}

// NewLessonProgressRepository binds the generic repository to lesson_progress.
func NewLessonProgressRepository(db *sqlx.DB) *Repository[models.LessonProgressRow] {
	return MustNew[models.LessonProgressRow](db, Descriptor{
		Table:    "lesson_progress",
		IDColumn: "id_progress",
		Columns: []string{
			"id_progress", "id_lesson", "id_student", "status",
			"seconds_watched", "completed_at", "created_at", "updated_at",
		},
		SortColumns:  models.LessonProgressSortColumns,
		DefaultOrder: "created_at DESC",
	})
}
