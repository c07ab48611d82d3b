package dto

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// Category is the read DTO for categories. No light/heavy split.
type Category struct {
	IDCategory string    `json:"idCategory"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func CategoryFromRow(row models.CategoryRow, _ bool) Category {
	return Category{
		IDCategory: row.IDCategory,
		Name:       row.Name,
		Slug:       row.Slug,
		Position:   row.Position,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

// CreateCategoryInput registers a new category.
type CreateCategoryInput struct {
	Name     string `json:"name" validate:"required"`
	Slug     string `json:"slug" validate:"required"`
	Position int    `json:"position" validate:"min=0"`
}

func (in CreateCategoryInput) StoreFields() map[string]interface{} {
	return map[string]interface{}{
		"name":     in.Name,
		"slug":     in.Slug,
		"position": in.Position,
	}
}

// UpdateCategoryInput applies a partial category update.
type UpdateCategoryInput struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Position *int    `json:"position"`
}

func (in UpdateCategoryInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "name", in.Name)
	setField(fields, "slug", in.Slug)
	setField(fields, "position", in.Position)
	return fields
}
