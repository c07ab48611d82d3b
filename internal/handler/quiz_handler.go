package handler

import (
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
)

// QuizHandler exposes quiz endpoints.
type QuizHandler = Crud[models.QuizFilter, models.QuizRow, dto.Quiz, dto.CreateQuizInput, dto.UpdateQuizInput]

// NewQuizHandler constructs QuizHandler.
func NewQuizHandler(svc *service.QuizService) *QuizHandler {
	return NewCrud[models.QuizFilter](svc)
}

// QuestionHandler exposes quiz question endpoints.
type QuestionHandler = Crud[models.QuestionFilter, models.QuestionRow, dto.Question, dto.CreateQuestionInput, dto.UpdateQuestionInput]

// NewQuestionHandler constructs QuestionHandler.
func NewQuestionHandler(svc *service.QuestionService) *QuestionHandler {
	return NewCrud[models.QuestionFilter](svc)
}

// OptionHandler exposes question option endpoints.
type OptionHandler = Crud[models.OptionFilter, models.OptionRow, dto.Option, dto.CreateOptionInput, dto.UpdateOptionInput]

// NewOptionHandler constructs OptionHandler.
func NewOptionHandler(svc *service.OptionService) *OptionHandler {
	return NewCrud[models.OptionFilter](svc)
}
