package dto

import (
	"time"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
)

// Quiz is the read DTO for quizzes. Instructions and AIGenerationPrompt
// belong to the heavy projection.
type Quiz struct {
	IDQuiz             string    `json:"idQuiz"`
	IDSection          string    `json:"idSection"`
	Title              string    `json:"title"`
	Status             string    `json:"status"`
	TimeLimitSeconds   *int      `json:"timeLimitSeconds,omitempty"`
	MaxAttempts        int       `json:"maxAttempts"`
	PassingScore       float64   `json:"passingScore"`
	Instructions       *string   `json:"instructions,omitempty"`
	AIGenerationPrompt *string   `json:"aiGenerationPrompt,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func QuizFromRow(row models.QuizRow, light bool) Quiz {
	out := Quiz{
		IDQuiz:           row.IDQuiz,
		IDSection:        row.IDSection,
		Title:            row.Title,
		Status:           row.Status,
		TimeLimitSeconds: row.TimeLimitSeconds,
		MaxAttempts:      row.MaxAttempts,
		PassingScore:     row.PassingScore,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if !light {
		out.Instructions = row.Instructions
		out.AIGenerationPrompt = row.AIGenerationPrompt
	}
	return out
}

// CreateQuizInput adds a quiz to a section.
type CreateQuizInput struct {
	IDSection        string  `json:"idSection" validate:"required"`
	Title            string  `json:"title" validate:"required"`
	Status           string  `json:"status"`
	TimeLimitSeconds *int    `json:"timeLimitSeconds"`
	MaxAttempts      int     `json:"maxAttempts" validate:"min=1"`
	PassingScore     float64 `json:"passingScore" validate:"min=0,max=100"`
	Instructions     *string `json:"instructions"`
}

func (in CreateQuizInput) StoreFields() map[string]interface{} {
	status := in.Status
	if status == "" {
		status = "DRAFT"
	}
	fields := map[string]interface{}{
		"id_section":    in.IDSection,
		"title":         in.Title,
		"status":        status,
		"max_attempts":  in.MaxAttempts,
		"passing_score": in.PassingScore,
	}
	setField(fields, "time_limit_seconds", in.TimeLimitSeconds)
	setField(fields, "instructions", in.Instructions)
	return fields
}

// UpdateQuizInput applies a partial quiz update.
type UpdateQuizInput struct {
	Title              *string  `json:"title"`
	Status             *string  `json:"status"`
	TimeLimitSeconds   *int     `json:"timeLimitSeconds"`
	MaxAttempts        *int     `json:"maxAttempts"`
	PassingScore       *float64 `json:"passingScore"`
	Instructions       *string  `json:"instructions"`
	AIGenerationPrompt *string  `json:"aiGenerationPrompt"`
}

func (in UpdateQuizInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "title", in.Title)
	setField(fields, "status", in.Status)
	setField(fields, "time_limit_seconds", in.TimeLimitSeconds)
	setField(fields, "max_attempts", in.MaxAttempts)
	setField(fields, "passing_score", in.PassingScore)
	setField(fields, "instructions", in.Instructions)
	setField(fields, "ai_generation_prompt", in.AIGenerationPrompt)
	return fields
}

// Question is the read DTO for quiz questions. Explanation belongs to the
// heavy projection.
type Question struct {
	IDQuestion   string    `json:"idQuestion"`
	IDQuiz       string    `json:"idQuiz"`
	Statement    string    `json:"statement"`
	QuestionType string    `json:"questionType"`
	Position     int       `json:"position"`
	Points       float64   `json:"points"`
	Explanation  *string   `json:"explanation,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func QuestionFromRow(row models.QuestionRow, light bool) Question {
	out := Question{
		IDQuestion:   row.IDQuestion,
		IDQuiz:       row.IDQuiz,
		Statement:    row.Statement,
		QuestionType: row.QuestionType,
		Position:     row.Position,
		Points:       row.Points,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if !light {
		out.Explanation = row.Explanation
	}
	return out
}

// CreateQuestionInput adds a question to a quiz.
type CreateQuestionInput struct {
	IDQuiz       string  `json:"idQuiz" validate:"required"`
	Statement    string  `json:"statement" validate:"required"`
	QuestionType string  `json:"questionType" validate:"required"`
	Position     int     `json:"position" validate:"min=0"`
	Points       float64 `json:"points" validate:"min=0"`
	Explanation  *string `json:"explanation"`
}

func (in CreateQuestionInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{
		"id_quiz":       in.IDQuiz,
		"statement":     in.Statement,
		"question_type": in.QuestionType,
		"position":      in.Position,
		"points":        in.Points,
	}
	setField(fields, "explanation", in.Explanation)
	return fields
}

// UpdateQuestionInput applies a partial question update.
type UpdateQuestionInput struct {
	Statement    *string  `json:"statement"`
	QuestionType *string  `json:"questionType"`
	Position     *int     `json:"position"`
	Points       *float64 `json:"points"`
	Explanation  *string  `json:"explanation"`
}

func (in UpdateQuestionInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "statement", in.Statement)
	setField(fields, "question_type", in.QuestionType)
	setField(fields, "position", in.Position)
	setField(fields, "points", in.Points)
	setField(fields, "explanation", in.Explanation)
	return fields
}

// Option is the read DTO for question options. No light/heavy split.
type Option struct {
	IDOption   string    `json:"idOption"`
	IDQuestion string    `json:"idQuestion"`
	Content    string    `json:"content"`
	IsCorrect  bool      `json:"isCorrect"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
}

func OptionFromRow(row models.OptionRow, _ bool) Option {
	return Option{
		IDOption:   row.IDOption,
		IDQuestion: row.IDQuestion,
		Content:    row.Content,
		IsCorrect:  row.IsCorrect,
		Position:   row.Position,
		CreatedAt:  row.CreatedAt,
	}
}

// CreateOptionInput adds an option to a question.
type CreateOptionInput struct {
	IDQuestion string `json:"idQuestion" validate:"required"`
	Content    string `json:"content" validate:"required"`
	IsCorrect  bool   `json:"isCorrect"`
	Position   int    `json:"position" validate:"min=0"`
}

func (in CreateOptionInput) StoreFields() map[string]interface{} {
	return map[string]interface{}{
		"id_question": in.IDQuestion,
		"content":     in.Content,
		"is_correct":  in.IsCorrect,
		"position":    in.Position,
	}
}

// UpdateOptionInput applies a partial option update.
type UpdateOptionInput struct {
	Content   *string `json:"content"`
	IsCorrect *bool   `json:"isCorrect"`
	Position  *int    `json:"position"`
}

func (in UpdateOptionInput) StoreFields() map[string]interface{} {
	fields := map[string]interface{}{}
	setField(fields, "content", in.Content)
	setField(fields, "is_correct", in.IsCorrect)
	setField(fields, "position", in.Position)
	return fields
}
