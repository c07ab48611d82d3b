package handler

import (
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
)

// TagHandler exposes tag endpoints.
type TagHandler = Crud[models.TagFilter, models.TagRow, dto.Tag, dto.CreateTagInput, dto.UpdateTagInput]

// NewTagHandler constructs TagHandler.
func NewTagHandler(svc *service.TagService) *TagHandler {
	return NewCrud[models.TagFilter](svc)
}

// CourseTagHandler exposes course-tag association endpoints.
type CourseTagHandler = Crud[models.CourseTagFilter, models.CourseTagRow, dto.CourseTag, dto.CreateCourseTagInput, dto.UpdateCourseTagInput]

// NewCourseTagHandler constructs CourseTagHandler.
func NewCourseTagHandler(svc *service.CourseTagService) *CourseTagHandler {
	return NewCrud[models.CourseTagFilter](svc)
}
