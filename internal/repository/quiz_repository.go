package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// NewQuizRepository binds the generic repository to the quizzes table.
func NewQuizRepository(db *sqlx.DB) *Repository[models.QuizRow] {
	return MustNew[models.QuizRow](db, Descriptor{
		Table:    "quizzes",
		IDColumn: "id_quiz",
		Columns: []string{
			"id_quiz", "id_section", "title", "status", "time_limit_seconds",
			"max_attempts", "passing_score", "instructions",
			"ai_generation_prompt", "created_at", "updated_at",
		},
		SortColumns:  models.QuizSortColumns,
		DefaultOrder: "created_at DESC",
	})
}

// NewQuestionRepository binds the generic repository to quiz_questions.
func NewQuestionRepository(db *sqlx.DB) *Repository[models.QuestionRow] {
	return MustNew[models.QuestionRow](db, Descriptor{
		Table:    "quiz_questions",
		IDColumn: "id_question",
		Columns: []string{
			"id_question", "id_quiz", "statement", "question_type",
			"position", "points", "explanation", "created_at", "updated_at",
		},
		SortColumns:  models.QuestionSortColumns,
		DefaultOrder: "position ASC",
	})
}

// NewOptionRepository binds the generic repository to question_options.
func NewOptionRepository(db *sqlx.DB) *Repository[models.OptionRow] {
	return MustNew[models.OptionRow](db, Descriptor{
		Table:    "question_options",
		IDColumn: "id_option",
		Columns: []string{
			"id_option", "id_question", "content", "is_correct", "position",
			"created_at",
		},
		SortColumns:  models.OptionSortColumns,
		DefaultOrder: "position ASC",
	})
}
