package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
)

// SubmissionService handles quiz submission use-cases.
type SubmissionService = Crud[models.SubmissionRow, dto.Submission, dto.CreateSubmissionInput, dto.UpdateSubmissionInput]

// NewSubmissionService constructs the submission service.
func NewSubmissionService(repo *repository.Repository[models.SubmissionRow], validate *validator.Validate, logger *zap.Logger) *SubmissionService {
	return NewCrud("submission", repo, dto.SubmissionFromRow,
		dto.CreateSubmissionInput.StoreFields, dto.UpdateSubmissionInput.StoreFields,
		validate, logger)
}

// SubmissionAnswerService handles per-question answer use-cases.
type SubmissionAnswerService = Crud[models.SubmissionAnswerRow, dto.SubmissionAnswer, dto.CreateSubmissionAnswerInput, dto.UpdateSubmissionAnswerInput]

// NewSubmissionAnswerService constructs the submission answer service.
func NewSubmissionAnswerService(repo *repository.Repository[models.SubmissionAnswerRow], validate *validator.Validate, logger *zap.Logger) *SubmissionAnswerService {
	return NewCrud("submission answer", repo, dto.SubmissionAnswerFromRow,
		dto.CreateSubmissionAnswerInput.StoreFields, dto.UpdateSubmissionAnswerInput.StoreFields,
		validate, logger)
}
