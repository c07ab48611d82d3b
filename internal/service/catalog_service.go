package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
)

// CourseService handles course use-cases.
type CourseService = Crud[models.CourseRow, dto.Course, dto.CreateCourseInput, dto.UpdateCourseInput]

// NewCourseService constructs the course service.
func NewCourseService(repo *repository.Repository[models.CourseRow], validate *validator.Validate, logger *zap.Logger) *CourseService {
	return NewCrud("course", repo, dto.CourseFromRow,
		dto.CreateCourseInput.StoreFields, dto.UpdateCourseInput.StoreFields,
		validate, logger)
}

// SectionService handles course section use-cases.
type SectionService = Crud[models.SectionRow, dto.Section, dto.CreateSectionInput, dto.UpdateSectionInput]

// NewSectionService constructs the section service.
func NewSectionService(repo *repository.Repository[models.SectionRow], validate *validator.Validate, logger *zap.Logger) *SectionService {
	return NewCrud("section", repo, dto.SectionFromRow,
		dto.CreateSectionInput.StoreFields, dto.UpdateSectionInput.StoreFields,
		validate, logger)
}

// CategoryService handles category use-cases.
type CategoryService = Crud[models.CategoryRow, dto.Category, dto.CreateCategoryInput, dto.UpdateCategoryInput]

// NewCategoryService constructs the category service.
func NewCategoryService(repo *repository.Repository[models.CategoryRow], validate *validator.Validate, logger *zap.Logger) *CategoryService {
	return NewCrud("category", repo, dto.CategoryFromRow,
		dto.CreateCategoryInput.StoreFields, dto.UpdateCategoryInput.StoreFields,
		validate, logger)
}

// EnrollmentService handles enrollment use-cases.
type EnrollmentService = Crud[models.EnrollmentRow, dto.Enrollment, dto.CreateEnrollmentInput, dto.UpdateEnrollmentInput]

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo *repository.Repository[models.EnrollmentRow], validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	return NewCrud("enrollment", repo, dto.EnrollmentFromRow,
		dto.CreateEnrollmentInput.StoreFields, dto.UpdateEnrollmentInput.StoreFields,
		validate, logger)
}
