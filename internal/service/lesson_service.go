package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
)

// LessonService handles lesson use-cases.
type LessonService = Crud[models.LessonRow, dto.Lesson, dto.CreateLessonInput, dto.UpdateLessonInput]

// NewLessonService constructs the lesson service.
func NewLessonService(repo *repository.Repository[models.LessonRow], validate *validator.Validate, logger *zap.Logger) *LessonService {
	return NewCrud("lesson", repo, dto.LessonFromRow,
		dto.CreateLessonInput.StoreFields, dto.UpdateLessonInput.StoreFields,
		validate, logger)
}

// LessonResourceService handles lesson attachment use-cases.
type LessonResourceService = Crud[models.LessonResourceRow, dto.LessonResource, dto.CreateLessonResourceInput, dto.UpdateLessonResourceInput]

// NewLessonResourceService constructs the lesson resource service.
func NewLessonResourceService(repo *repository.Repository[models.LessonResourceRow], validate *validator.Validate, logger *zap.Logger) *LessonResourceService {
	return NewCrud("lesson resource", repo, dto.LessonResourceFromRow,
		dto.CreateLessonResourceInput.StoreFields, dto.UpdateLessonResourceInput.StoreFields,
		validate, logger)
}

// LessonProgressService handles per-student progress use-cases.
type LessonProgressService = Crud[models.LessonProgressRow, dto.LessonProgress, dto.CreateLessonProgressInput, dto.UpdateLessonProgressInput]

// NewLessonProgressService constructs the lesson progress service.
func NewLessonProgressService(repo *repository.Repository[models.LessonProgressRow], validate *validator.Validate, logger *zap.Logger) *LessonProgressService {
	return NewCrud("lesson progress", repo, dto.LessonProgressFromRow,
		dto.CreateLessonProgressInput.StoreFields, dto.UpdateLessonProgressInput.StoreFields,
		validate, logger)
}
