package dto

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// Submission is the read DTO for quiz submissions. Feedback fields belong to
// the heavy projection only.
type Submission struct {
	IDSubmission  string     `json:"idSubmission"`
	IDQuiz        string     `json:"idQuiz"`
	IDStudent     string     `json:"idStudent"`
	Status        string     `json:"status"`
	Score         *float64   `json:"score,omitempty"`
	AttemptNumber int        `json:"attemptNumber"`
	StartedAt     time.Time  `json:"startedAt"`
	SubmittedAt   *time.Time `json:"submittedAt,omitempty"`
	GradedAt      *time.Time `json:"gradedAt,omitempty"`
	Feedback      *string    `json:"feedback,omitempty"`
	AIFeedback    *string    `json:"aiFeedback,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// SubmissionFromRow projects a storage row into the requested shape. The
// heavy shape is a strict superset of the light one; no re-query is needed to
// switch projections. GradedAt is backed by the store's greated_at column.
func SubmissionFromRow(row models.SubmissionRow, light bool) Submission {
	out := Submission{
		IDSubmission:  row.IDSubmission,
		IDQuiz:        row.IDQuiz,
		IDStudent:     row.IDStudent,
		Status:        row.Status,
		Score:         row.Score,
		AttemptNumber: row.AttemptNumber,
		StartedAt:     row.StartedAt,
		SubmittedAt:   row.SubmittedAt,
		GradedAt:      row.GradedAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if !light {
		out.Feedback = row.Feedback
		out.AIFeedback = row.AIFeedback
	}
	return out
}

// CreateSubmissionInput starts a new quiz attempt.
type CreateSubmissionInput struct {
	IDQuiz        string     `json:"idQuiz" validate:"required"`
	IDStudent     string     `json:"idStudent" validate:"required"`
	Status        string     `json:"status"`
	AttemptNumber int        `json:"attemptNumber" validate:"min=1"`
	StartedAt     *time.Time `json:"startedAt"`
}

// StoreFields maps the input onto storage columns.
func (in CreateSubmissionInput) StoreFields() map[string]interface{} {
	status := in.Status
	if status == "" {
		status = string(models.SubmissionInProgress)
	}
	startedAt := time.Now().UTC()
	if in.StartedAt != nil {
		startedAt = *in.StartedAt
	}
	return map[string]interface{}{
		"id_quiz":        in.IDQuiz,
		"id_student":     in.IDStudent,
		"status":         status,
		"attempt_number": in.AttemptNumber,
		"started_at":     startedAt,
	}
}

// UpdateSubmissionInput applies a partial update; absent fields leave their
// columns untouched.
type UpdateSubmissionInput struct {
	Status      *string    `json:"status"`
	Score       *float64   `json:"score"`
	SubmittedAt *time.Time `json:"submittedAt"`
	GradedAt    *time.Time `json:"gradedAt"`
	Feedback    *string    `json:"feedback"`
	AIFeedback  *string    `json:"aiFeedback"`
}

// StoreFields maps only the present fields onto storage columns. gradedAt
// writes to greated_at, matching the live schema.
func (in UpdateSubmissionInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "status", in.Status)
	setField(fields, "score", in.Score)
	setField(fields, "submitted_at", in.SubmittedAt)
	setField(fields, "greated_at", in.GradedAt)
	setField(fields, "feedback", in.Feedback)
	setField(fields, "ai_feedback", in.AIFeedback)
	return fields
}

// SubmissionAnswer is the read DTO for per-question answers. FreeText belongs
// to the heavy projection.
type SubmissionAnswer struct {
	IDAnswer      string    `json:"idAnswer"`
	IDSubmission  string    `json:"idSubmission"`
	IDQuestion    string    `json:"idQuestion"`
	IDOption      *string   `json:"idOption,omitempty"`
	FreeText      *string   `json:"freeText,omitempty"`
	IsCorrect     *bool     `json:"isCorrect,omitempty"`
	PointsAwarded *float64  `json:"pointsAwarded,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func SubmissionAnswerFromRow(row models.SubmissionAnswerRow, light bool) SubmissionAnswer {
	out := SubmissionAnswer{
		IDAnswer:      row.IDAnswer,
		IDSubmission:  row.IDSubmission,
		IDQuestion:    row.IDQuestion,
		IDOption:      row.IDOption,
		IsCorrect:     row.IsCorrect,
		PointsAwarded: row.PointsAwarded,
		CreatedAt:     row.CreatedAt,
	}
	if !light {
		out.FreeText = row.FreeText
	}
	return out
}

// CreateSubmissionAnswerInput records one answer inside a submission.
type CreateSubmissionAnswerInput struct {
	IDSubmission string  `json:"idSubmission" validate:"required"`
	IDQuestion   string  `json:"idQuestion" validate:"required"`
	IDOption     *string `json:"idOption"`
	FreeText     *string `json:"freeText"`
}

func (in CreateSubmissionAnswerInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{
		"id_submission": in.IDSubmission,
		"id_question":   in.IDQuestion,
	}
	setField(fields, "id_option", in.IDOption)
	setField(fields, "free_text", in.FreeText)
	return fields
}

// UpdateSubmissionAnswerInput grades or amends one answer.
type UpdateSubmissionAnswerInput struct {
	IDOption      *string  `json:"idOption"`
	FreeText      *string  `json:"freeText"`
	IsCorrect     *bool    `json:"isCorrect"`
	PointsAwarded *float64 `json:"pointsAwarded"`
}

func (in UpdateSubmissionAnswerInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "id_option", in.IDOption)
	setField(fields, "free_text", in.FreeText)
	setField(fields, "is_correct", in.IsCorrect)
	setField(fields, "points_awarded", in.PointsAwarded)
	return fields
}
