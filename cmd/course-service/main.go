package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/IETI-Group/SOPHIA-CourseService-sub001/api/swagger"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/handler"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/middleware"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/cache"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/config"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/database"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/logger"
	corsmiddleware "github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/middleware/cors"
	reqidmiddleware "github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/middleware/requestid"
)

// @title SOPHIA Course Service
// @version 0.1.0
// @description Course catalog, lessons, quizzes, and engagement API
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close() //nolint:errcheck
		}
	}

	metrics := service.NewMetricsService()
	validate := validator.New()

	handlers, exportSvc, err := buildHandlers(cfg, db, metrics, validate, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to wire services", "error", err)
	}
	exportSvc.Start(context.Background())
	defer exportSvc.Stop()

	metricsHandler := handler.NewMetricsHandler(metrics, db)
	exportHandler := handler.NewExportHandler(exportSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	if redisClient != nil {
		api.Use(middleware.ListCache(redisClient, metrics, cfg.Cache.TTL))
	}
	handlers.Register(api)

	// Exports are stateful job resources; they bypass the list cache.
	exportHandler.Register(r.Group(cfg.APIPrefix + "/exports"))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildHandlers wires repositories, services, and handlers for every
// resource. Each repository reports query timings to the metrics service.
func buildHandlers(cfg *config.Config, db *sqlx.DB, metrics *service.MetricsService, validate *validator.Validate, logr *zap.Logger) (handler.Handlers, *service.ExportService, error) {
	observe := func(table, operation string, d time.Duration) {
		metrics.ObserveDBQuery(table, operation, d)
	}

	courses := repository.NewCourseRepository(db)
	sections := repository.NewSectionRepository(db)
	categories := repository.NewCategoryRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	lessons := repository.NewLessonRepository(db)
	lessonResources := repository.NewLessonResourceRepository(db)
	lessonProgress := repository.NewLessonProgressRepository(db)
	quizzes := repository.NewQuizRepository(db)
	questions := repository.NewQuestionRepository(db)
	options := repository.NewOptionRepository(db)
	submissions := repository.NewSubmissionRepository(db)
	submissionAnswers := repository.NewSubmissionAnswerRepository(db)
	tags := repository.NewTagRepository(db)
	courseTags := repository.NewCourseTagRepository(db)
	comments := repository.NewCommentRepository(db)
	reviews := repository.NewReviewRepository(db)
	certificates := repository.NewCertificateRepository(db)

	courses.SetObserver(observe)
	sections.SetObserver(observe)
	categories.SetObserver(observe)
	enrollments.SetObserver(observe)
	lessons.SetObserver(observe)
	lessonResources.SetObserver(observe)
	lessonProgress.SetObserver(observe)
	quizzes.SetObserver(observe)
	questions.SetObserver(observe)
	options.SetObserver(observe)
	submissions.SetObserver(observe)
	submissionAnswers.SetObserver(observe)
	tags.SetObserver(observe)
	courseTags.SetObserver(observe)
	comments.SetObserver(observe)
	reviews.SetObserver(observe)
	certificates.SetObserver(observe)

	exportSvc, err := service.NewExportService(cfg.Export, certificates, courses, enrollments, logr)
	if err != nil {
		return handler.Handlers{}, nil, err
	}

	return handler.Handlers{
		Courses:           handler.NewCourseHandler(service.NewCourseService(courses, validate, logr)),
		Sections:          handler.NewSectionHandler(service.NewSectionService(sections, validate, logr)),
		Categories:        handler.NewCategoryHandler(service.NewCategoryService(categories, validate, logr)),
		Enrollments:       handler.NewEnrollmentHandler(service.NewEnrollmentService(enrollments, validate, logr)),
		Lessons:           handler.NewLessonHandler(service.NewLessonService(lessons, validate, logr)),
		LessonResources:   handler.NewLessonResourceHandler(service.NewLessonResourceService(lessonResources, validate, logr)),
		LessonProgress:    handler.NewLessonProgressHandler(service.NewLessonProgressService(lessonProgress, validate, logr)),
		Quizzes:           handler.NewQuizHandler(service.NewQuizService(quizzes, validate, logr)),
		Questions:         handler.NewQuestionHandler(service.NewQuestionService(questions, validate, logr)),
		Options:           handler.NewOptionHandler(service.NewOptionService(options, validate, logr)),
		Submissions:       handler.NewSubmissionHandler(service.NewSubmissionService(submissions, validate, logr)),
		SubmissionAnswers: handler.NewSubmissionAnswerHandler(service.NewSubmissionAnswerService(submissionAnswers, validate, logr)),
		Tags:              handler.NewTagHandler(service.NewTagService(tags, validate, logr)),
		CourseTags:        handler.NewCourseTagHandler(service.NewCourseTagService(courseTags, validate, logr)),
		Comments:          handler.NewCommentHandler(service.NewCommentService(comments, validate, logr)),
		Reviews:           handler.NewReviewHandler(service.NewReviewService(reviews, validate, logr)),
		Certificates:      handler.NewCertificateHandler(service.NewCertificateService(certificates, validate, logr)),
	}, exportSvc, nil
}
