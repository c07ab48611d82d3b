package dto

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// Comment is the read DTO for lesson comments. No light/heavy split.
type Comment struct {
	IDComment string    `json:"idComment"`
	IDLesson  string    `json:"idLesson"`
	IDAuthor  string    `json:"idAuthor"`
	IDParent  *string   `json:"idParent,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func CommentFromRow(row models.CommentRow, _ bool) Comment {
	return Comment{
		IDComment: row.IDComment,
		IDLesson:  row.IDLesson,
		IDAuthor:  row.IDAuthor,
		IDParent:  row.IDParent,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// CreateCommentInput posts a comment on a lesson.
type CreateCommentInput struct {
	IDLesson string  `json:"idLesson" validate:"required"`
	IDAuthor string  `json:"idAuthor" validate:"required"`
	IDParent *string `json:"idParent"`
	Body     string  `json:"body" validate:"required"`
}

func (in CreateCommentInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{
		"id_lesson": in.IDLesson,
		"id_author": in.IDAuthor,
		"body":      in.Body,
	}
	setField(fields, "id_parent", in.IDParent)
	return fields
}

// UpdateCommentInput edits a comment body.
type UpdateCommentInput struct {
	Body *string `json:"body"`
}

func (in UpdateCommentInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "body", in.Body)
	return fields
}

// Review is the read DTO for course reviews. Body belongs to the heavy
// projection.
type Review struct {
	IDReview  string    `json:"idReview"`
	IDCourse  string    `json:"idCourse"`
	IDStudent string    `json:"idStudent"`
	Rating    int       `json:"rating"`
	Body      *string   `json:"body,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ReviewFromRow(row models.ReviewRow, light bool) Review {
	out := Review{
		IDReview:  row.IDReview,
		IDCourse:  row.IDCourse,
		IDStudent: row.IDStudent,
		Rating:    row.Rating,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if !light {
		out.Body = row.Body
	}
	return out
}

// CreateReviewInput posts a course review.
type CreateReviewInput struct {
	IDCourse  string  `json:"idCourse" validate:"required"`
	IDStudent string  `json:"idStudent" validate:"required"`
	Rating    int     `json:"rating" validate:"min=1,max=5"`
	Body      *string `json:"body"`
}

func (in CreateReviewInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{
		"id_course":  in.IDCourse,
		"id_student": in.IDStudent,
		"rating":     in.Rating,
	}
	setField(fields, "body", in.Body)
	return fields
}

// UpdateReviewInput amends a review.
type UpdateReviewInput struct {
	Rating *int    `json:"rating"`
	Body   *string `json:"body"`
}

func (in UpdateReviewInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "rating", in.Rating)
	setField(fields, "body", in.Body)
	return fields
}

// Certificate is the read DTO for completion certificates. No light/heavy
// split.
type Certificate struct {
	IDCertificate string    `json:"idCertificate"`
	IDCourse      string    `json:"idCourse"`
	IDStudent     string    `json:"idStudent"`
	SerialNumber  string    `json:"serialNumber"`
	IssuedAt      time.Time `json:"issuedAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

func CertificateFromRow(row models.CertificateRow, _ bool) Certificate {
	return Certificate{
		IDCertificate: row.IDCertificate,
		IDCourse:      row.IDCourse,
		IDStudent:     row.IDStudent,
		SerialNumber:  row.SerialNumber,
		IssuedAt:      row.IssuedAt,
		CreatedAt:     row.CreatedAt,
	}
}

// CreateCertificateInput issues a certificate.
type CreateCertificateInput struct {
	IDCourse     string     `json:"idCourse" validate:"required"`
	IDStudent    string     `json:"idStudent" validate:"required"`
	SerialNumber string     `json:"serialNumber" validate:"required"`
	IssuedAt     *time.Time `json:"issuedAt"`
}

func (in CreateCertificateInput) StoreFields() map[string]interface{} {
	issuedAt := time.Now().UTC()
	if in.IssuedAt != nil {
		issuedAt = *in.IssuedAt
	}
	return map[string]interface{}{
		"id_course":     in.IDCourse,
		"id_student":    in.IDStudent,
		"serial_number": in.SerialNumber,
		"issued_at":     issuedAt,
	}
}

// UpdateCertificateInput corrects certificate metadata.
type UpdateCertificateInput struct {
	SerialNumber *string    `json:"serialNumber"`
	IssuedAt     *time.Time `json:"issuedAt"`
}

func (in UpdateCertificateInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "serial_number", in.SerialNumber)
	setField(fields, "issued_at", in.IssuedAt)
	return fields
}
