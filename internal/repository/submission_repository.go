package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// NewSubmissionRepository binds the generic repository to quiz_submissions.
// The greated_at column is a live-schema misspelling of graded_at; the
// descriptor reproduces the schema as deployed.
func NewSubmissionRepository(db *sqlx.DB) *Repository[models.SubmissionRow] {
	return MustNew[models.SubmissionRow](db, Descriptor{
		Table:    "quiz_submissions",
		IDColumn: "id_submission",
		Columns: []string{
			"id_submission", "id_quiz", "id_student", "status", "score",
			"attempt_number", "started_at", "submitted_at", "greated_at",
			"feedback", "ai_feedback", "created_at", "updated_at",
		},
		SortColumns:  models.SubmissionSortColumns,
		DefaultOrder: "created_at DESC",
	})
}

// NewSubmissionAnswerRepository binds the generic repository to
// submission_answers.
func NewSubmissionAnswerRepository(db *sqlx.DB) *Repository[models.SubmissionAnswerRow] {
	return MustNew[models.SubmissionAnswerRow](db, Descriptor{
		Table:    "submission_answers",
		IDColumn: "id_answer",
		Columns: []string{
			"id_answer", "id_submission", "id_question", "id_option",
			"free_text", "is_correct", "points_awarded", "created_at",
		},
		SortColumns:  models.SubmissionAnswerSortColumns,
		DefaultOrder: "created_at ASC",
	})
}
