package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
)

// TagService handles tag use-cases.
type TagService = Crud[models.TagRow, dto.Tag, dto.CreateTagInput, dto.UpdateTagInput]

// NewTagService constructs the tag service.
func NewTagService(repo *repository.Repository[models.TagRow], validate *validator.Validate, logger *zap.Logger) *TagService {
	return NewCrud("tag", repo, dto.TagFromRow,
		dto.CreateTagInput.StoreFields, dto.UpdateTagInput.StoreFields,
		validate, logger)
}

// CourseTagService handles course-tag association use-cases.
type CourseTagService = Crud[models.CourseTagRow, dto.CourseTag, dto.CreateCourseTagInput, dto.UpdateCourseTagInput]

// NewCourseTagService constructs the course-tag service.
func NewCourseTagService(repo *repository.Repository[models.CourseTagRow], validate *validator.Validate, logger *zap.Logger) *CourseTagService {
	return NewCrud("course tag", repo, dto.CourseTagFromRow,
		dto.CreateCourseTagInput.StoreFields, dto.UpdateCourseTagInput.StoreFields,
		validate, logger)
}
