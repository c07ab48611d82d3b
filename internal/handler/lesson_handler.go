package handler

import (
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
)

// LessonHandler exposes lesson endpoints.
type LessonHandler = Crud[models.LessonFilter, models.LessonRow, dto.Lesson, dto.CreateLessonInput, dto.UpdateLessonInput]

// NewLessonHandler constructs LessonHandler.
func NewLessonHandler(svc *service.LessonService) *LessonHandler {
	return NewCrud[models.LessonFilter](svc)
}

// LessonResourceHandler exposes lesson resource endpoints.
type LessonResourceHandler = Crud[models.LessonResourceFilter, models.LessonResourceRow, dto.LessonResource, dto.CreateLessonResourceInput, dto.UpdateLessonResourceInput]

// NewLessonResourceHandler constructs LessonResourceHandler.
func NewLessonResourceHandler(svc *service.LessonResourceService) *LessonResourceHandler {
	return NewCrud[models.LessonResourceFilter](svc)
}

// LessonProgressHandler exposes lesson progress endpoints.
type LessonProgressHandler = Crud[models.LessonProgressFilter, models.LessonProgressRow, dto.LessonProgress, dto.CreateLessonProgressInput, dto.UpdateLessonProgressInput]

// NewLessonProgressHandler constructs LessonProgressHandler.
func NewLessonProgressHandler(svc *service.LessonProgressService) *LessonProgressHandler {
	return NewCrud[models.LessonProgressFilter](svc)
}
