package handler

import (
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
)

// CourseHandler exposes course endpoints.
type CourseHandler = Crud[models.CourseFilter, models.CourseRow, dto.Course, dto.CreateCourseInput, dto.UpdateCourseInput]

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(svc *service.CourseService) *CourseHandler {
	return NewCrud[models.CourseFilter](svc)
}

// SectionHandler exposes course section endpoints.
type SectionHandler = Crud[models.SectionFilter, models.SectionRow, dto.Section, dto.CreateSectionInput, dto.UpdateSectionInput]

// NewSectionHandler constructs SectionHandler.
func NewSectionHandler(svc *service.SectionService) *SectionHandler {
	return NewCrud[models.SectionFilter](svc)
}

// CategoryHandler exposes category endpoints.
type CategoryHandler = Crud[models.CategoryFilter, models.CategoryRow, dto.Category, dto.CreateCategoryInput, dto.UpdateCategoryInput]

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return NewCrud[models.CategoryFilter](svc)
}

// EnrollmentHandler exposes enrollment endpoints.
type EnrollmentHandler = Crud[models.EnrollmentFilter, models.EnrollmentRow, dto.Enrollment, dto.CreateEnrollmentInput, dto.UpdateEnrollmentInput]

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(svc *service.EnrollmentService) *EnrollmentHandler {
	return NewCrud[models.EnrollmentFilter](svc)
}
