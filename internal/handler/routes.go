package handler

import "github.com/gin-gonic/gin"

// Handlers bundles every resource handler for route registration.
type Handlers struct {
	Courses           *CourseHandler
	Sections          *SectionHandler
	Categories        *CategoryHandler
	Enrollments       *EnrollmentHandler
	Lessons           *LessonHandler
	LessonResources   *LessonResourceHandler
	LessonProgress    *LessonProgressHandler
	Quizzes           *QuizHandler
	Questions         *QuestionHandler
	Options           *OptionHandler
	Submissions       *SubmissionHandler
	SubmissionAnswers *SubmissionAnswerHandler
	Tags              *TagHandler
	CourseTags        *CourseTagHandler
	Comments          *CommentHandler
	Reviews           *ReviewHandler
	Certificates      *CertificateHandler
}

// Register mounts every resource under the given group.
func (h Handlers) Register(rg *gin.RouterGroup) {
	h.Courses.Register(rg, "/courses")
	h.Sections.Register(rg, "/sections")
	h.Categories.Register(rg, "/categories")
	h.Enrollments.Register(rg, "/enrollments")
	h.Lessons.Register(rg, "/lessons")
	h.LessonResources.Register(rg, "/lesson-resources")
	h.LessonProgress.Register(rg, "/lesson-progress")
	h.Quizzes.Register(rg, "/quizzes")
	h.Questions.Register(rg, "/quiz-questions")
	h.Options.Register(rg, "/question-options")
	h.Submissions.Register(rg, "/quiz-submissions")
	h.SubmissionAnswers.Register(rg, "/submission-answers")
	h.Tags.Register(rg, "/tags")
	h.CourseTags.Register(rg, "/course-tags")
	h.Comments.Register(rg, "/comments")
	h.Reviews.Register(rg, "/reviews")
	h.Certificates.Register(rg, "/certificates")
}
