package models

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
)

// QuizRow is the quizzes storage row.
type QuizRow struct {
	IDQuiz             string    `db:"id_quiz"`
	IDSection          string    `db:"id_section"`
	Title              string    `db:"title"`
	Status             string    `db:"status"`
	TimeLimitSeconds   *int      `db:"time_limit_seconds"`
	MaxAttempts        int       `db:"max_attempts"`
	PassingScore       float64   `db:"passing_score"`
	Instructions       *string   `db:"instructions"`
	AIGenerationPrompt *string   `db:"ai_generation_prompt"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// QuizFilter narrows quiz listings.
type QuizFilter struct {
	IDSection       *string  `form:"idSection"`
	Status          *string  `form:"status"`
	PassingScoreMin *float64 `form:"passingScoreMin"`
	PassingScoreMax *float64 `form:"passingScoreMax"`
	MaxAttemptsMin  *int     `form:"maxAttemptsMin"`
	MaxAttemptsMax  *int     `form:"maxAttemptsMax"`
}

func (f QuizFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_section", f.IDSection)
	query.Equals(&b, "status", f.Status)
	query.Range(&b, "passing_score", f.PassingScoreMin, f.PassingScoreMax)
	query.Range(&b, "max_attempts", f.MaxAttemptsMin, f.MaxAttemptsMax)
	return b.Predicate()
}

const (
	QuizSortTitle        query.Field = "TITLE"
	QuizSortPassingScore query.Field = "PASSING_SCORE"
	QuizSortCreatedAt    query.Field = "CREATED_AT"
)

var QuizSortColumns = query.FieldMapping{
	QuizSortTitle:        "title",
	QuizSortPassingScore: "passing_score",
	QuizSortCreatedAt:    "created_at",
}

// QuestionRow is the quiz_questions storage row.
type QuestionRow struct {
	IDQuestion   string    `db:"id_question"`
	IDQuiz       string    `db:"id_quiz"`
	Statement    string    `db:"statement"`
	QuestionType string    `db:"question_type"`
	Position     int       `db:"position"`
	Points       float64   `db:"points"`
	Explanation  *string   `db:"explanation"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// QuestionFilter narrows question listings.
type QuestionFilter struct {
	IDQuiz       *string  `form:"idQuiz"`
	QuestionType *string  `form:"questionType"`
	PointsMin    *float64 `form:"pointsMin"`
	PointsMax    *float64 `form:"pointsMax"`
	PositionMin  *int     `form:"positionMin"`
	PositionMax  *int     `form:"positionMax"`
}

func (f QuestionFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_quiz", f.IDQuiz)
	query.Equals(&b, "question_type", f.QuestionType)
	query.Range(&b, "points", f.PointsMin, f.PointsMax)
	query.Range(&b, "position", f.PositionMin, f.PositionMax)
	return b.Predicate()
}

const (
	QuestionSortPosition  query.Field = "POSITION"
	QuestionSortPoints    query.Field = "POINTS"
	QuestionSortCreatedAt query.Field = "CREATED_AT"
)

var QuestionSortColumns = query.FieldMapping{
	QuestionSortPosition:  "position",
	QuestionSortPoints:    "points",
	QuestionSortCreatedAt: "created_at",
}

// OptionRow is the question_options storage row.
type OptionRow struct {
	IDOption   string    `db:"id_option"`
	IDQuestion string    `db:"id_question"`
	Content    string    `db:"content"`
	IsCorrect  bool      `db:"is_correct"`
	Position   int       `db:"position"`
	CreatedAt  time.Time `db:"created_at"`
}

// OptionFilter narrows option listings.
type OptionFilter struct {
	IDQuestion  *string `form:"idQuestion"`
	IsCorrect   *bool   `form:"isCorrect"`
	PositionMin *int    `form:"positionMin"`
	PositionMax *int    `form:"positionMax"`
}

func (f OptionFilter) Predicate() query.Predicate {
	var b query.Builder
	query.Equals(&b, "id_question", f.IDQuestion)
	query.Equals(&b, "is_correct", f.IsCorrect)
	query.Range(&b, "position", f.PositionMin, f.PositionMax)
	return b.Predicate()
}

const (
	OptionSortPosition  query.Field = "POSITION"
	OptionSortCreatedAt query.Field = "CREATED_AT"
)

var OptionSortColumns = query.FieldMapping{
	OptionSortPosition:  "position",
	OptionSortCreatedAt: "created_at",
}
