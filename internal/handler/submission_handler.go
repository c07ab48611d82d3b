package handler

import (
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
)

// SubmissionHandler exposes quiz submission endpoints.
type SubmissionHandler = Crud[models.SubmissionFilter, models.SubmissionRow, dto.Submission, dto.CreateSubmissionInput, dto.UpdateSubmissionInput]

// NewSubmissionHandler constructs SubmissionHandler.
func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return NewCrud[models.SubmissionFilter](svc)
}

// SubmissionAnswerHandler exposes submission answer endpoints.
type SubmissionAnswerHandler = Crud[models.SubmissionAnswerFilter, models.SubmissionAnswerRow, dto.SubmissionAnswer, dto.CreateSubmissionAnswerInput, dto.UpdateSubmissionAnswerInput]

// NewSubmissionAnswerHandler constructs SubmissionAnswerHandler.
func NewSubmissionAnswerHandler(svc *service.SubmissionAnswerService) *SubmissionAnswerHandler {
	return NewCrud[models.SubmissionAnswerFilter](svc)
}
