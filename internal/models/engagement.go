package models

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
)

// CommentRow is the comments storage row.
type CommentRow struct {
	IDComment string    `db:"id_comment"`
	IDLesson  string    `db:"id_lesson"`
	IDAuthor  string    `db:"id_author"`
	IDParent  *string   `db:"id_parent"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CommentFilter narrows comment listings.
type CommentFilter struct {
	IDLesson       *string    `form:"idLesson"`
	IDAuthor       *string    `form:"idAuthor"`
	IDParent       *string    `form:"idParent"`
	CreatedAtStart *time.Time `form:"createdAtStart"`
	CreatedAtEnd   *time.Time `form:"createdAtEnd"`
}

func (f CommentFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_lesson", f.IDLesson)
	query.Equals(&b, "id_author", f.IDAuthor)
	query.Equals(&b, "id_parent", f.IDParent)
	query.Range(&b, "created_at", f.CreatedAtStart, f.CreatedAtEnd)
	return b.Predicate()
}

const CommentSortCreatedAt query.Field = "CREATED_AT"

var CommentSortColumns = query.FieldMapping{
	CommentSortCreatedAt: "created_at",
}

// ReviewRow is the course_reviews storage row.
type ReviewRow struct {
	IDReview  string    `db:"id_review"`
	IDCourse  string    `db:"id_course"`
	IDStudent string    `db:"id_student"`
	Rating    int       `db:"rating"`
	Body      *string   `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ReviewFilter narrows review listings.
type ReviewFilter struct {
	IDCourse       *string    `form:"idCourse"`
	IDStudent      *string    `form:"idStudent"`
	RatingMin      *int       `form:"ratingMin"`
	RatingMax      *int       `form:"ratingMax"`
	CreatedAtStart *time.Time `form:"createdAtStart"`
	CreatedAtEnd   *time.Time `form:"createdAtEnd"`
}

func (f ReviewFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_course", f.IDCourse)
	query.Equals(&b, "id_student", f.IDStudent)
	query.Range(&b, "rating", f.RatingMin, f.RatingMax)
	query.Range(&b, "created_at", f.CreatedAtStart, f.CreatedAtEnd)
	return b.Predicate()
}

const (
	ReviewSortRating    query.Field = "RATING"
	ReviewSortCreatedAt query.Field = "CREATED_AT"
)

var ReviewSortColumns = query.FieldMapping{
	ReviewSortRating:    "rating",
	ReviewSortCreatedAt: "created_at",
}

// CertificateRow is the certificates storage row.
type CertificateRow struct {
	IDCertificate string    `db:"id_certificate"`
	IDCourse      string    `db:"id_course"`
	IDStudent     string    `db:"id_student"`
	SerialNumber  string    `db:"serial_number"`
	IssuedAt      time.Time `db:"issued_at"`
	CreatedAt     time.Time `db:"created_at"`
}

// CertificateFilter narrows certificate listings.
type CertificateFilter struct {
	IDCourse      *string    `form:"idCourse"`
	IDStudent     *string    `form:"idStudent"`
	SerialNumber  *string    `form:"serialNumber"`
	IssuedAtStart *time.Time `form:"issuedAtStart"`
	IssuedAtEnd   *time.Time `form:"issuedAtEnd"`
}

func (f CertificateFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_course", f.IDCourse)
	query.Equals(&b, "id_student", f.IDStudent)
	query.Equals(&b, "serial_number", f.SerialNumber)
	query.Range(&b, "issued_at", f.IssuedAtStart, f.IssuedAtEnd)
	return b.Predicate()
}

const (
	CertificateSortIssuedAt  query.Field = "ISSUED_AT"
	CertificateSortCreatedAt query.Field = "CREATED_AT"
)

var CertificateSortColumns = query.FieldMapping{
	CertificateSortIssuedAt:  "issued_at",
	CertificateSortCreatedAt: "created_at",
}
