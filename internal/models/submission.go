package models

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
)

// SubmissionStatus values are stored as opaque tokens; membership is enforced
// by the request schema, not here.
type SubmissionStatus string

const (
	SubmissionInProgress SubmissionStatus = "IN_PROGRESS"
	SubmissionSubmitted  SubmissionStatus = "SUBMITTED"
	SubmissionGraded     SubmissionStatus = "GRADED"
)

// SubmissionRow is the quiz_submissions storage row. The graded-at column is
// spelled greated_at in the live schema; the mapping reproduces the schema as
// it exists, pending a deliberate migration.
type SubmissionRow struct {
	IDSubmission  string     `db:"id_submission"`
	IDQuiz        string     `db:"id_quiz"`
	IDStudent     string     `db:"id_student"`
	Status        string     `db:"status"`
	Score         *float64   `db:"score"`
	AttemptNumber int        `db:"attempt_number"`
	StartedAt     time.Time  `db:"started_at"`
	SubmittedAt   *time.Time `db:"submitted_at"`
	GradedAt      *time.Time `db:"greated_at"`
	Feedback      *string    `db:"feedback"`
	AIFeedback    *string    `db:"ai_feedback"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// SubmissionFilter is the fully-nullable predicate surface for listing
// submissions. Absent fields mean "no constraint", never "match null".
type SubmissionFilter struct {
	IDQuiz           *string    `form:"idQuiz"`
	IDStudent        *string    `form:"idStudent"`
	Status           *string    `form:"status"`
	ScoreMin         *float64   `form:"scoreMin"`
	ScoreMax         *float64   `form:"scoreMax"`
	AttemptMin       *int       `form:"attemptMin"`
	AttemptMax       *int       `form:"attemptMax"`
	SubmittedAtStart *time.Time `form:"submittedAtStart"`
	SubmittedAtEnd   *time.Time `form:"submittedAtEnd"`
	GradedAtStart    *time.Time `form:"gradedAtStart"`
	GradedAtEnd      *time.Time `form:"gradedAtEnd"`
}

// Predicate converts the filter into the store predicate, skipping absent
// fields. The gradedAt range intentionally targets the misspelled column.
func (f SubmissionFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_quiz", f.IDQuiz)
	query.Equals(&b, "id_student", f.IDStudent)
	query.Equals(&b, "status", f.Status)
	query.Range(&b, "score", f.ScoreMin, f.ScoreMax)
	query.Range(&b, "attempt_number", f.AttemptMin, f.AttemptMax)
	query.Range(&b, "submitted_at", f.SubmittedAtStart, f.SubmittedAtEnd)
	query.Range(&b, "greated_at", f.GradedAtStart, f.GradedAtEnd)
	return b.Predicate()
}

// Sortable submission fields.
const (
	SubmissionSortScore       query.Field = "SCORE"
	SubmissionSortStatus      query.Field = "STATUS"
	SubmissionSortAttempt     query.Field = "ATTEMPT_NUMBER"
	SubmissionSortSubmittedAt query.Field = "SUBMITTED_AT"
	SubmissionSortGradedAt    query.Field = "GRADED_AT"
	SubmissionSortCreatedAt   query.Field = "CREATED_AT"
)

// SubmissionSortColumns maps submission sort fields to storage columns.
var SubmissionSortColumns = query.FieldMapping{
	SubmissionSortScore:       "score",
	SubmissionSortStatus:      "status",
	SubmissionSortAttempt:     "attempt_number",
	SubmissionSortSubmittedAt: "submitted_at",
	SubmissionSortGradedAt:    "greated_at",
	SubmissionSortCreatedAt:   "created_at",
}

// SubmissionAnswerRow is the submission_answers storage row.
type SubmissionAnswerRow struct {
	IDAnswer      string    `db:"id_answer"`
	IDSubmission  string    `db:"id_submission"`
	IDQuestion    string    `db:"id_question"`
	IDOption      *string   `db:"id_option"`
	FreeText      *string   `db:"free_text"`
	IsCorrect     *bool     `db:"is_correct"`
	PointsAwarded *float64  `db:"points_awarded"`
	CreatedAt     time.Time `db:"created_at"`
}

// SubmissionAnswerFilter lists answers within a submission or question.
type SubmissionAnswerFilter struct {
	IDSubmission     *string  `form:"idSubmission"`
	IDQuestion       *string  `form:"idQuestion"`
	IsCorrect        *bool    `form:"isCorrect"`
	PointsAwardedMin *float64 `form:"pointsAwardedMin"`
	PointsAwardedMax *float64 `form:"pointsAwardedMax"`
}

func (f SubmissionAnswerFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_submission", f.IDSubmission)
	query.Equals(&b, "id_question", f.IDQuestion)
	query.Equals(&b, "is_correct", f.IsCorrect)
	query.Range(&b, "points_awarded", f.PointsAwardedMin, f.PointsAwardedMax)
	return b.Predicate()
}

const (
	SubmissionAnswerSortPoints    query.Field = "POINTS_AWARDED"
	SubmissionAnswerSortCreatedAt query.Field = "CREATED_AT"
)

var SubmissionAnswerSortColumns = query.FieldMapping{
	SubmissionAnswerSortPoints:    "points_awarded",
	SubmissionAnswerSortCreatedAt: "created_at",
}
