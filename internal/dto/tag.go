package dto

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// Tag is the read DTO for tags. Tags have no light/heavy split; the flag is
// ignored.
type Tag struct {
	IDTag     string    `json:"idTag"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func TagFromRow(row models.TagRow, _ bool) Tag {
	return Tag{
		IDTag:     row.IDTag,
		Name:      row.Name,
		Slug:      row.Slug,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// CreateTagInput registers a new tag.
type CreateTagInput struct {
	Name  string  `json:"name" validate:"required"`
	Slug  string  `json:"slug" validate:"required"`
	Color *string `json:"color"`
}

func (in CreateTagInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{
		"name": in.Name,
		"slug": in.Slug,
	}
	setField(fields, "color", in.Color)
	return fields
}

// UpdateTagInput applies a partial tag update.
type UpdateTagInput struct {
	Name  *string `json:"name"`
	Slug  *string `json:"slug"`
	Color *string `json:"color"`
}

func (in UpdateTagInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "name", in.Name)
	setField(fields, "slug", in.Slug)
	setField(fields, "color", in.Color)
	return fields
}

// CourseTag is the read DTO for course↔tag links.
type CourseTag struct {
	IDCourseTag string    `json:"idCourseTag"`
	IDCourse    string    `json:"idCourse"`
	IDTag       string    `json:"idTag"`
	CreatedAt   time.Time `json:"createdAt"`
}

func CourseTagFromRow(row models.CourseTagRow, _ bool) CourseTag {
	return CourseTag{
		IDCourseTag: row.IDCourseTag,
		IDCourse:    row.IDCourse,
		IDTag:       row.IDTag,
		CreatedAt:   row.CreatedAt,
	}
}

// CreateCourseTagInput attaches a tag to a course.
type CreateCourseTagInput struct {
	IDCourse string `json:"idCourse" validate:"required"`
	IDTag    string `json:"idTag" validate:"required"`
}

func (in CreateCourseTagInput) StoreFields() map[string]interface{} {
	return map[string]interface{}{
		"id_course": in.IDCourse,
		"id_tag":    in.IDTag,
	}
}

// UpdateCourseTagInput repoints an existing link.
type UpdateCourseTagInput struct {
	IDCourse *string `json:"idCourse"`
	IDTag    *string `json:"idTag"`
}

func (in UpdateCourseTagInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "id_course", in.IDCourse)
	setField(fields, "id_tag", in.IDTag)
	return fields
}
