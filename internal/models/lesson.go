package models

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
)

// LessonType tokens as stored.
type LessonType string

const (
	LessonVideo   LessonType = "VIDEO"
	LessonText    LessonType = "TEXT"
	LessonPractic LessonType = "PRACTICE"
)

// LessonRow is the lessons storage row.
type LessonRow struct {
	IDLesson         string    `db:"id_lesson"`
	IDSection        string    `db:"id_section"`
	Title            string    `db:"title"`
	LessonType       string    `db:"lesson_type"`
	Position         int       `db:"position"`
	DurationSeconds  int       `db:"duration_seconds"`
	Content          *string   `db:"content"`
	VideoURL         *string   `db:"video_url"`
	AIGeneratedNotes *string   `db:"ai_generated_notes"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// LessonFilter narrows lesson listings.
type LessonFilter struct {
	IDSection          *string `form:"idSection"`
	LessonType         *string `form:"lessonType"`
	PositionMin        *int    `form:"positionMin"`
	PositionMax        *int    `form:"positionMax"`
	DurationSecondsMin *int    `form:"durationSecondsMin"`
	DurationSecondsMax *int    `form:"durationSecondsMax"`
}

func (f LessonFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_section", f.IDSection)
	query.Equals(&b, "lesson_type", f.LessonType)
	query.Range(&b, "position", f.PositionMin, f.PositionMax)
	query.Range(&b, "duration_seconds", f.DurationSecondsMin, f.DurationSecondsMax)
	return b.Predicate()
}

const (
	LessonSortPosition  query.Field = "POSITION"
	LessonSortTitle     query.Field = "TITLE"
	LessonSortDuration  query.Field = "DURATION"
	LessonSortCreatedAt query.Field = "CREATED_AT"
)

var LessonSortColumns = query.FieldMapping{
	LessonSortPosition:  "position",
	LessonSortTitle:     "title",
	LessonSortDuration:  "duration_seconds",
	LessonSortCreatedAt: "created_at",
}

// LessonResourceRow is the lesson_resources storage row.
type LessonResourceRow struct {
	IDResource string    `db:"id_resource"`
	IDLesson   string    `db:"id_lesson"`
	Name       string    `db:"name"`
	MimeType   string    `db:"mime_type"`
	SizeBytes  int64     `db:"size_bytes"`
	URL        string    `db:"url"`
	CreatedAt  time.Time `db:"created_at"`
}

// LessonResourceFilter narrows lesson resource listings.
type LessonResourceFilter struct {
	IDLesson     *string `form:"idLesson"`
	MimeType     *string `form:"mimeType"`
	SizeBytesMin *int64  `form:"sizeBytesMin"`
	SizeBytesMax *int64  `form:"sizeBytesMax"`
}

func (f LessonResourceFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_lesson", f.IDLesson)
	query.Equals(&b, "mime_type", f.MimeType)
	query.Range(&b, "size_bytes", f.SizeBytesMin, f.SizeBytesMax)
	return b.Predicate()
}

const (
	LessonResourceSortName      query.Field = "NAME"
	LessonResourceSortSize      query.Field = "SIZE_BYTES"
	LessonResourceSortCreatedAt query.Field = "CREATED_AT"
)

var LessonResourceSortColumns = query.FieldMapping{
	LessonResourceSortName:      "name",
	LessonResourceSortSize:      "size_bytes",
	LessonResourceSortCreatedAt: "created_at",
}

// LessonProgressRow is the lesson_progress storage row.
type LessonProgressRow struct {
	IDProgress     string     `db:"id_progress"`
	IDLesson       string     `db:"id_lesson"`
	IDStudent      string     `db:"id_student"`
	Status         string     `db:"status"`
	SecondsWatched int        `db:"seconds_watched"`
	CompletedAt    *time.Time `db:"completed_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// LessonProgressFilter narrows progress listings.
type LessonProgressFilter struct {
	IDLesson          *string `form:"idLesson"`
	IDStudent         *string `form:"idStudent"`
	Status            *string `form:"status"`
	SecondsWatchedMin *int    `form:"secondsWatchedMin"`
	SecondsWatchedMax *int    `form:"secondsWatchedMax"`
}

func (f LessonProgressFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_lesson", f.IDLesson)
	query.Equals(&b, "id_student", f.IDStudent)
	query.Equals(&b, "status", f.Status)
	query.Range(&b, "seconds_watched", f.SecondsWatchedMin, f.SecondsWatchedMax)
	return b.Predicate()
}

const (
	LessonProgressSortWatched   query.Field = "SECONDS_WATCHED"
	LessonProgressSortCreatedAt query.Field = "CREATED_AT"
)

var LessonProgressSortColumns = query.FieldMapping{
	LessonProgressSortWatched:   "seconds_watched",
	LessonProgressSortCreatedAt: "created_at",
}
