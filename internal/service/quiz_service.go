package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
)

// QuizService handles quiz use-cases.
type QuizService = Crud[models.QuizRow, dto.Quiz, dto.CreateQuizInput, dto.UpdateQuizInput]

// NewQuizService constructs the quiz service.
func NewQuizService(repo *repository.Repository[models.QuizRow], validate *validator.Validate, logger *zap.Logger) *QuizService {
	return NewCrud("quiz", repo, dto.QuizFromRow,
		dto.CreateQuizInput.StoreFields, dto.UpdateQuizInput.StoreFields,
		validate, logger)
}

// QuestionService handles quiz question use-cases.
type QuestionService = Crud[models.QuestionRow, dto.Question, dto.CreateQuestionInput, dto.UpdateQuestionInput]

// NewQuestionService constructs the question service.
func NewQuestionService(repo *repository.Repository[models.QuestionRow], validate *validator.Validate, logger *zap.Logger) *QuestionService {
	return NewCrud("question", repo, dto.QuestionFromRow,
		dto.CreateQuestionInput.StoreFields, dto.UpdateQuestionInput.StoreFields,
		validate, logger)
}

// OptionService handles question option use-cases.
type OptionService = Crud[models.OptionRow, dto.Option, dto.CreateOptionInput, dto.UpdateOptionInput]

// NewOptionService constructs the option service.
func NewOptionService(repo *repository.Repository[models.OptionRow], validate *validator.Validate, logger *zap.Logger) *OptionService {
	return NewCrud("option", repo, dto.OptionFromRow,
		dto.CreateOptionInput.StoreFields, dto.UpdateOptionInput.StoreFields,
		validate, logger)
}
