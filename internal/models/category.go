package models

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
)

// CategoryRow is the categories storage row.
type CategoryRow struct {
	IDCategory string    `db:"id_category"`
	Name       string    `db:"name"`
	Slug       string    `db:"slug"`
	Position   int       `db:"position"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// CategoryFilter narrows category listings.
type CategoryFilter struct {
	Name        *string `form:"name"`
	Slug        *string `form:"slug"`
	PositionMin *int    `form:"positionMin"`
	PositionMax *int    `form:"positionMax"`
}

func (f CategoryFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "name", f.Name)
	query.Equals(&b, "slug", f.Slug)
	query.Range(&b, "position", f.PositionMin, f.PositionMax)
	return b.Predicate()
}

const (
	CategorySortName      query.Field = "NAME"
	CategorySortPosition  query.Field = "POSITION"
	CategorySortCreatedAt query.Field = "CREATED_AT"
)

var CategorySortColumns = query.FieldMapping{
	CategorySortName:      "name",
	CategorySortPosition:  "position",
	CategorySortCreatedAt: "created_at",
}
