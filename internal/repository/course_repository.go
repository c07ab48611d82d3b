package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// NewCourseRepository binds the generic repository to the courses table.
func NewCourseRepository(db *sqlx.DB) *Repository[models.CourseRow] {
	return MustNew[models.CourseRow](db, Descriptor{
		Table:    "courses",
		IDColumn: "id_course",
		Columns: []string{
			"id_course", "id_category", "id_instructor", "title", "slug",
			"difficulty", "status", "price", "published", "description",
			"ai_summary", "created_at", "updated_at",
		},
		SortColumns:  models.CourseSortColumns,
		DefaultOrder: "created_at DESC",
	})
}

// NewSectionRepository binds the generic repository to course_sections.
func NewSectionRepository(db *sqlx.DB) *Repository[models.SectionRow] {
	return MustNew[models.SectionRow](db, Descriptor{
		Table:    "course_sections",
		IDColumn: "id_section",
		Columns: []string{
			"id_section", "id_course", "title", "position",
			"duration_minutes", "created_at", "updated_at",
		},
		SortColumns:  models.SectionSortColumns,
		DefaultOrder: "position ASC",
	})
}

// NewCategoryRepository binds the generic repository to categories.
func NewCategoryRepository(db *sqlx.DB) *Repository[models.CategoryRow] {
	return MustNew[models.CategoryRow](db, Descriptor{
		Table:    "categories",
		IDColumn: "id_category",
		Columns: []string{
			"id_category", "name", "slug", "position", "created_at", "updated_at",
		},
		SortColumns:  models.CategorySortColumns,
		DefaultOrder: "position ASC",
	})
}

// NewEnrollmentRepository binds the generic repository to enrollments.
func NewEnrollmentRepository(db *sqlx.DB) *Repository[models.EnrollmentRow] {
	return MustNew[models.EnrollmentRow](db, Descriptor{
		Table:    "enrollments",
		IDColumn: "id_enrollment",
		Columns: []string{
			"id_enrollment", "id_course", "id_student", "status",
			"progress_percent", "enrolled_at", "completed_at",
			"created_at", "updated_at",
		},
		SortColumns:  models.EnrollmentSortColumns,
		DefaultOrder: "created_at DESC",
	})
}
