package models

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
)

// CourseStatus tokens as stored.
type CourseStatus string

const (
	CourseDraft     CourseStatus = "DRAFT"
	CoursePublished CourseStatus = "PUBLISHED"
	CourseArchived  CourseStatus = "ARCHIVED"
)

// CourseRow is the courses storage row.
type CourseRow struct {
	IDCourse     string    `db:"id_course"`
	IDCategory   *string   `db:"id_category"`
	IDInstructor string    `db:"id_instructor"`
	Title        string    `db:"title"`
	Slug         string    `db:"slug"`
	Difficulty   string    `db:"difficulty"`
	Status       string    `db:"status"`
	Price        float64   `db:"price"`
	Published    bool      `db:"published"`
	Description  *string   `db:"description"`
	AISummary    *string   `db:"ai_summary"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// CourseFilter narrows course listings.
type CourseFilter struct {
	IDCategory     *string    `form:"idCategory"`
	IDInstructor   *string    `form:"idInstructor"`
	Difficulty     *string    `form:"difficulty"`
	Status         *string    `form:"status"`
	Published      *bool      `form:"published"`
	PriceMin       *float64   `form:"priceMin"`
	PriceMax       *float64   `form:"priceMax"`
	CreatedAtStart *time.Time `form:"createdAtStart"`
	CreatedAtEnd   *time.Time `form:"createdAtEnd"`
}

func (f CourseFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_category", f.IDCategory)
	query.Equals(&b, "id_instructor", f.IDInstructor)
	query.Equals(&b, "difficulty", f.Difficulty)
	query.Equals(&b, "status", f.Status)
	query.Equals(&b, "published", f.Published)
	query.Range(&b, "price", f.PriceMin, f.PriceMax)
	query.Range(&b, "created_at", f.CreatedAtStart, f.CreatedAtEnd)
	return b.Predicate()
}

const (
	CourseSortTitle     query.Field = "TITLE"
	CourseSortPrice     query.Field = "PRICE"
	CourseSortCreatedAt query.Field = "CREATED_AT"
	CourseSortUpdatedAt query.Field = "UPDATED_AT"
)

var CourseSortColumns = query.FieldMapping{
	CourseSortTitle:     "title",
	CourseSortPrice:     "price",
	CourseSortCreatedAt: "created_at",
	CourseSortUpdatedAt: "updated_at",
}

// SectionRow is the course_sections storage row.
type SectionRow struct {
	IDSection       string    `db:"id_section"`
	IDCourse        string    `db:"id_course"`
	Title           string    `db:"title"`
	Position        int       `db:"position"`
	DurationMinutes int       `db:"duration_minutes"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// SectionFilter narrows section listings.
type SectionFilter struct {
	IDCourse    *string `form:"idCourse"`
	PositionMin *int    `form:"positionMin"`
	PositionMax *int    `form:"positionMax"`
}

func (f SectionFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_course", f.IDCourse)
	query.Range(&b, "position", f.PositionMin, f.PositionMax)
	return b.Predicate()
}

const (
	SectionSortPosition  query.Field = "POSITION"
	SectionSortTitle     query.Field = "TITLE"
	SectionSortCreatedAt query.Field = "CREATED_AT"
)

var SectionSortColumns = query.FieldMapping{
	SectionSortPosition:  "position",
	SectionSortTitle:     "title",
	SectionSortCreatedAt: "created_at",
}
