package models

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
)

// TagRow is the tags storage row.
type TagRow struct {
	IDTag     string    `db:"id_tag"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Color     *string   `db:"color"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TagFilter narrows tag listings.
type TagFilter struct {
	Name           *string    `form:"name"`
	Slug           *string    `form:"slug"`
	CreatedAtStart *time.Time `form:"createdAtStart"`
	CreatedAtEnd   *time.Time `form:"createdAtEnd"`
}

func (f TagFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "name", f.Name)
	query.Equals(&b, "slug", f.Slug)
	query.Range(&b, "created_at", f.CreatedAtStart, f.CreatedAtEnd)
	return b.Predicate()
}

const (
	TagSortName      query.Field = "NAME"
	TagSortCreatedAt query.Field = "CREATED_AT"
)

var TagSortColumns = query.FieldMapping{
	TagSortName:      "name",
	TagSortCreatedAt: "created_at",
}

// CourseTagRow links one course to one tag.
type CourseTagRow struct {
	IDCourseTag string    `db:"id_course_tag"`
	IDCourse    string    `db:"id_course"`
	IDTag       string    `db:"id_tag"`
	CreatedAt   time.Time `db:"created_at"`
}

// CourseTagFilter narrows course-tag listings.
type CourseTagFilter struct {
	IDCourse *string `form:"idCourse"`
	IDTag    *string `form:"idTag"`
}

func (f CourseTagFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_course", f.IDCourse)
	query.Equals(&b, "id_tag", f.IDTag)
	return b.Predicate()
}

const CourseTagSortCreatedAt query.Field = "CREATED_AT"

var CourseTagSortColumns = query.FieldMapping{
	CourseTagSortCreatedAt: "created_at",
}
