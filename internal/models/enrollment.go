package models

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
)

// EnrollmentStatus tokens as stored.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentDropped   EnrollmentStatus = "DROPPED"
)

// EnrollmentRow is the enrollments storage row.
type EnrollmentRow struct {
	IDEnrollment    string     `db:"id_enrollment"`
	IDCourse        string     `db:"id_course"`
	IDStudent       string     `db:"id_student"`
	Status          string     `db:"status"`
	ProgressPercent float64    `db:"progress_percent"`
	EnrolledAt      time.Time  `db:"enrolled_at"`
	CompletedAt     *time.Time `db:"completed_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// EnrollmentFilter narrows enrollment listings.
type EnrollmentFilter struct {
	IDCourse        *string    `form:"idCourse"`
	IDStudent       *string    `form:"idStudent"`
	Status          *string    `form:"status"`
	ProgressMin     *float64   `form:"progressMin"`
	ProgressMax     *float64   `form:"progressMax"`
	EnrolledAtStart *time.Time `form:"enrolledAtStart"`
	EnrolledAtEnd   *time.Time `form:"enrolledAtEnd"`
}

func (f EnrollmentFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_course", f.IDCourse)
	query.Equals(&b, "id_student", f.IDStudent)
	query.Equals(&b, "status", f.Status)
	query.Range(&b, "progress_percent", f.ProgressMin, f.ProgressMax)
	query.Range(&b, "enrolled_at", f.EnrolledAtStart, f.EnrolledAtEnd)
	return b.Predicate()
}

const (
	EnrollmentSortProgress   query.Field = "PROGRESS"
	EnrollmentSortEnrolledAt query.Field = "ENROLLED_AT"
	EnrollmentSortCreatedAt  query.Field = "CREATED_AT"
)

var EnrollmentSortColumns = query.FieldMapping{
	EnrollmentSortProgress:   "progress_percent",
	EnrollmentSortEnrolledAt: "enrolled_at",
	EnrollmentSortCreatedAt:  "created_at",
}
