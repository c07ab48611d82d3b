package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// NewCommentRepository binds the generic repository to the comments table.
func NewCommentRepository(db *sqlx.DB) *Repository[models.CommentRow] {
	return MustNew[models.CommentRow](db, Descriptor{
		Table:    "comments",
		IDColumn: "id_comment",
		Columns: []string{
			"id_comment", "id_lesson", "id_author", "id_parent", "body",
			"created_at", "updated_at",
		},
		SortColumns:  models.CommentSortColumns,
		DefaultOrder: "created_at DESC",
	})
}

// NewReviewRepository binds the generic repository to course_reviews.
func NewReviewRepository(db *sqlx.DB) *Repository[models.ReviewRow] {
	return MustNew[models.ReviewRow](db, Descriptor{
		Table:    "course_reviews",
		IDColumn: "id_review",
		Columns: []string{
			"id_review", "id_course", "id_student", "rating", "body",
			"created_at", "updated_at",
		},
		SortColumns:  models.ReviewSortColumns,
		DefaultOrder: "created_at DESC",
	})
}

// NewCertificateRepository binds the generic repository to certificates.
func NewCertificateRepository(db *sqlx.DB) *Repository[models.CertificateRow] {
	return MustNew[models.CertificateRow](db, Descriptor{
		Table:    "certificates",
		IDColumn: "id_certificate",
		Columns: []string{
			"id_certificate", "id_course", "id_student", "serial_number",
			"issued_at", "created_at",
		},
		SortColumns:  models.CertificateSortColumns,
		DefaultOrder: "issued_at DESC",
	})
}
