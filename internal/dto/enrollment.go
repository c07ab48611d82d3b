package dto

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// Enrollment is the read DTO for course enrollments. No light/heavy split.
type Enrollment struct {
	IDEnrollment    string     `json:"idEnrollment"`
	IDCourse        string     `json:"idCourse"`
	IDStudent       string     `json:"idStudent"`
	Status          string     `json:"status"`
	ProgressPercent float64    `json:"progressPercent"`
	EnrolledAt      time.Time  `json:"enrolledAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func EnrollmentFromRow(row models.EnrollmentRow, _ bool) Enrollment {
	return Enrollment{
		IDEnrollment:    row.IDEnrollment,
		IDCourse:        row.IDCourse,
		IDStudent:       row.IDStudent,
		Status:          row.Status,
		ProgressPercent: row.ProgressPercent,
		EnrolledAt:      row.EnrolledAt,
		CompletedAt:     row.CompletedAt,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

// CreateEnrollmentInput enrols a student on a course.
type CreateEnrollmentInput struct {
	IDCourse   string     `json:"idCourse" validate:"required"`
	IDStudent  string     `json:"idStudent" validate:"required"`
	EnrolledAt *time.Time `json:"enrolledAt"`
}

func (in CreateEnrollmentInput) StoreFields() map[string]interface{} {
	enrolledAt := time.Now().UTC()
	if in.EnrolledAt != nil {
		enrolledAt = *in.EnrolledAt
	}
	return map[string]interface{}{
		"id_course":        in.IDCourse,
		"id_student":       in.IDStudent,
		"status":           string(models.EnrollmentActive),
		"progress_percent": 0.0,
		"enrolled_at":      enrolledAt,
	}
}

// UpdateEnrollmentInput applies a partial enrollment update.
type UpdateEnrollmentInput struct {
	Status          *string    `json:"status"`
	ProgressPercent *float64   `json:"progressPercent"`
	CompletedAt     *time.Time `json:"completedAt"`
}

func (in UpdateEnrollmentInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "status", in.Status)
	setField(fields, "progress_percent", in.ProgressPercent)
	setField(fields, "completed_at", in.CompletedAt)
	return fields
}
