package dto

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// Course is the read DTO for courses. Description and AISummary belong to the
// heavy projection.
type Course struct {
	IDCourse     string    `json:"idCourse"`
	IDCategory   *string   `json:"idCategory,omitempty"`
	IDInstructor string    `json:"idInstructor"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Difficulty   string    `json:"difficulty"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	Published    bool      `json:"published"`
	Description  *string   `json:"description,omitempty"`
	AISummary    *string   `json:"aiSummary,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func CourseFromRow(row models.CourseRow, light bool) Course {
	out := Course{
		IDCourse:     row.IDCourse,
		IDCategory:   row.IDCategory,
		IDInstructor: row.IDInstructor,
		Title:        row.Title,
		Slug:         row.Slug,
		Difficulty:   row.Difficulty,
		Status:       row.Status,
		Price:        row.Price,
		Published:    row.Published,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if !light {
		out.Description = row.Description
		out.AISummary = row.AISummary
	}
	return out
}

// CreateCourseInput registers a new course.
type CreateCourseInput struct {
	IDCategory   *string `json:"idCategory"`
	IDInstructor string  `json:"idInstructor" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Slug         string  `json:"slug" validate:"required"`
	Difficulty   string  `json:"difficulty" validate:"required"`
	Price        float64 `json:"price" validate:"min=0"`
	Description  *string `json:"description"`
}

func (in CreateCourseInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{
		"id_instructor": in.IDInstructor,
		"title":         in.Title,
		"slug":          in.Slug,
		"difficulty":    in.Difficulty,
		"status":        string(models.CourseDraft),
		"price":         in.Price,
		"published":     false,
	}
	setField(fields, "id_category", in.IDCategory)
	setField(fields, "description", in.Description)
	return fields
}

// UpdateCourseInput applies a partial course update.
type UpdateCourseInput struct {
	IDCategory  *string  `json:"idCategory"`
	Title       *string  `json:"title"`
	Slug        *string  `json:"slug"`
	Difficulty  *string  `json:"difficulty"`
	Status      *string  `json:"status"`
	Price       *float64 `json:"price"`
	Published   *bool    `json:"published"`
	Description *string  `json:"description"`
	AISummary   *string  `json:"aiSummary"`
}

func (in UpdateCourseInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "id_category", in.IDCategory)
	setField(fields, "title", in.Title)
	setField(fields, "slug", in.Slug)
	setField(fields, "difficulty", in.Difficulty)
	setField(fields, "status", in.Status)
	setField(fields, "price", in.Price)
	setField(fields, "published", in.Published)
	setField(fields, "description", in.Description)
	setField(fields, "ai_summary", in.AISummary)
	return fields
}

// Section is the read DTO for course sections. No light/heavy split.
type Section struct {
	IDSection       string    `json:"idSection"`
	IDCourse        string    `json:"idCourse"`
	Title           string    `json:"title"`
	Position        int       `json:"position"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func SectionFromRow(row models.SectionRow, _ bool) Section {
	return Section{
		IDSection:       row.IDSection,
		IDCourse:        row.IDCourse,
		Title:           row.Title,
		Position:        row.Position,
		DurationMinutes: row.DurationMinutes,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

// CreateSectionInput adds a section to a course.
type CreateSectionInput struct {
	IDCourse        string `json:"idCourse" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Position        int    `json:"position" validate:"min=0"`
	DurationMinutes int    `json:"durationMinutes" validate:"min=0"`
}

func (in CreateSectionInput) StoreFields() map[string]interface{} {
	return map[string]interface{}{
		"id_course":        in.IDCourse,
		"title":            in.Title,
		"position":         in.Position,
		"duration_minutes": in.DurationMinutes,
	}
}

// UpdateSectionInput applies a partial section update.
type UpdateSectionInput struct {
	Title           *string `json:"title"`
	Position        *int    `json:"position"`
	DurationMinutes *int    `json:"durationMinutes"`
}

func (in UpdateSectionInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "title", in.Title)
	setField(fields, "position", in.Position)
	setField(fields, "duration_minutes", in.DurationMinutes)
	return fields
}
