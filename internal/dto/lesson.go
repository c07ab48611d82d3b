package dto

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// Lesson is the read DTO for lessons. Content, VideoURL and AIGeneratedNotes
// belong to the heavy projection.
type Lesson struct {
	IDLesson         string    `json:"idLesson"`
	IDSection        string    `json:"idSection"`
	Title            string    `json:"title"`
	LessonType       string    `json:"lessonType"`
	Position         int       `json:"position"`
	DurationSeconds  int       `json:"durationSeconds"`
	Content          *string   `json:"content,omitempty"`
	VideoURL         *string   `json:"videoUrl,omitempty"`
	AIGeneratedNotes *string   `json:"aiGeneratedNotes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func LessonFromRow(row models.LessonRow, light bool) Lesson {
	out := Lesson{
		IDLesson:        row.IDLesson,
		IDSection:       row.IDSection,
		Title:           row.Title,
		LessonType:      row.LessonType,
		Position:        row.Position,
		DurationSeconds: row.DurationSeconds,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if !light {
		out.Content = row.Content
		out.VideoURL = row.VideoURL
		out.AIGeneratedNotes = row.AIGeneratedNotes
	}
	return out
}

// CreateLessonInput adds a lesson to a section.
type CreateLessonInput struct {
	IDSection       string  `json:"idSection" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	LessonType      string  `json:"lessonType" validate:"required"`
	Position        int     `json:"position" validate:"min=0"`
	DurationSeconds int     `json:"durationSeconds" validate:"min=0"`
	Content         *string `json:"content"`
	VideoURL        *string `json:"videoUrl"`
}

func (in CreateLessonInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{
		"id_section":       in.IDSection,
		"title":            in.Title,
		"lesson_type":      in.LessonType,
		"position":         in.Position,
		"duration_seconds": in.DurationSeconds,
	}
	setField(fields, "content", in.Content)
	setField(fields, "video_url", in.VideoURL)
	return fields
}

// UpdateLessonInput applies a partial lesson update.
type UpdateLessonInput struct {
	Title            *string `json:"title"`
	LessonType       *string `json:"lessonType"`
	Position         *int    `json:"position"`
	DurationSeconds  *int    `json:"durationSeconds"`
	Content          *string `json:"content"`
	VideoURL         *string `json:"videoUrl"`
	AIGeneratedNotes *string `json:"aiGeneratedNotes"`
}

func (in UpdateLessonInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "title", in.Title)
	setField(fields, "lesson_type", in.LessonType)
	setField(fields, "position", in.Position)
	setField(fields, "duration_seconds", in.DurationSeconds)
	setField(fields, "content", in.Content)
	setField(fields, "video_url", in.VideoURL)
	setField(fields, "ai_generated_notes", in.AIGeneratedNotes)
	return fields
}

// LessonResource is the read DTO for lesson attachments. No light/heavy split.
type LessonResource struct {
	IDResource string    `json:"idResource"`
	IDLesson   string    `json:"idLesson"`
	Name       string    `json:"name"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"createdAt"`
}

func LessonResourceFromRow(row models.LessonResourceRow, _ bool) LessonResource {
	return LessonResource{
		IDResource: row.IDResource,
		IDLesson:   row.IDLesson,
		Name:       row.Name,
		MimeType:   row.MimeType,
		SizeBytes:  row.SizeBytes,
		URL:        row.URL,
		CreatedAt:  row.CreatedAt,
	}
}

// CreateLessonResourceInput attaches a file to a lesson.
type CreateLessonResourceInput struct {
	IDLesson  string `json:"idLesson" validate:"required"`
	Name      string `json:"name" validate:"required"`
	MimeType  string `json:"mimeType" validate:"required"`
	SizeBytes int64  `json:"sizeBytes" validate:"min=0"`
	URL       string `json:"url" validate:"required,url"`
}

func (in CreateLessonResourceInput) StoreFields() map[string]interface{} {
	return map[string]interface{}{
		"id_lesson":  in.IDLesson,
		"name":       in.Name,
		"mime_type":  in.MimeType,
		"size_bytes": in.SizeBytes,
		"url":        in.URL,
	}
}

// UpdateLessonResourceInput applies a partial resource update.
type UpdateLessonResourceInput struct {
	Name      *string `json:"name"`
	MimeType  *string `json:"mimeType"`
	SizeBytes *int64  `json:"sizeBytes"`
	URL       *string `json:"url"`
}

func (in UpdateLessonResourceInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "name", in.Name)
	setField(fields, "mime_type", in.MimeType)
	setField(fields, "size_bytes", in.SizeBytes)
	setField(fields, "url", in.URL)
	return fields
}

// LessonProgress is the read DTO for per-student lesson progress.
type LessonProgress struct {
	IDProgress     string     `json:"idProgress"`
	IDLesson       string     `json:"idLesson"`
	IDStudent      string     `json:"idStudent"`
	Status         string     `json:"status"`
	SecondsWatched int        `json:"secondsWatched"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func LessonProgressFromRow(row models.LessonProgressRow, _ bool) LessonProgress {
	return LessonProgress{
		IDProgress:     row.IDProgress,
		IDLesson:       row.IDLesson,
		IDStudent:      row.IDStudent,
		Status:         row.Status,
		SecondsWatched: row.SecondsWatched,
		CompletedAt:    row.CompletedAt,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// CreateLessonProgressInput starts tracking a lesson for a student.
type CreateLessonProgressInput struct {
	IDLesson  string `json:"idLesson" validate:"required"`
	IDStudent string `json:"idStudent" validate:"required"`
	Status    string `json:"status"`
}

func (in CreateLessonProgressInput) StoreFields() map[string]interface{} {
	status := in.Status
	if status == "" {
		status = "NOT_STARTED"
	}
	return map[string]interface{}{
		"id_lesson":       in.IDLesson,
		"id_student":      in.IDStudent,
		"status":          status,
		"seconds_watched": 0,
	}
}

// UpdateLessonProgressInput advances a student's progress.
type UpdateLessonProgressInput struct {
	Status         *string    `json:"status"`
	SecondsWatched *int       `json:"secondsWatched"`
	CompletedAt    *time.Time `json:"completedAt"`
}

func (in UpdateLessonProgressInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "status", in.Status)
	setField(fields, "seconds_watched", in.SecondsWatched)
	setField(fields, "completed_at", in.CompletedAt)
	return fields
}
