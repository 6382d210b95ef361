package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"anoa.com/schoolregistry/internal/config"
	"anoa.com/schoolregistry/internal/jobs"
	"anoa.com/schoolregistry/internal/middleware"
	"anoa.com/schoolregistry/pkg/lock"
	"anoa.com/schoolregistry/pkg/storage"

	avatarHttp "anoa.com/schoolregistry/internal/modules/avatar/delivery/http"
	avatarRepo "anoa.com/schoolregistry/internal/modules/avatar/repository"
	avatarService "anoa.com/schoolregistry/internal/modules/avatar/service"

	facultyHttp "anoa.com/schoolregistry/internal/modules/faculty/delivery/http"
	facultyRepo "anoa.com/schoolregistry/internal/modules/faculty/repository"
	facultyService "anoa.com/schoolregistry/internal/modules/faculty/service"

	searchService "anoa.com/schoolregistry/internal/modules/search/service"

	statHttp "anoa.com/schoolregistry/internal/modules/stat/delivery/http"
	statService "anoa.com/schoolregistry/internal/modules/stat/service"

	studentHttp "anoa.com/schoolregistry/internal/modules/student/delivery/http"
	studentRepo "anoa.com/schoolregistry/internal/modules/student/repository"
	studentService "anoa.com/schoolregistry/internal/modules/student/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are the external resources the server is built on. Redis and Index are optional.
type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Storage storage.FileStorage
	Index   searchService.FacultyIndex
}

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	cron        *jobs.CronManager
}

func NewServer(cfg *config.Config, deps Deps) *Server {
	facultyRepo := facultyRepo.NewFacultyRepository(deps.DB)
	studentRepo := studentRepo.NewStudentRepository(deps.DB)
	avatarRepo := avatarRepo.NewAvatarRepository(deps.DB)

	facultySvc := facultyService.NewFacultyService(facultyRepo, deps.Index)
	facultyHandler := facultyHttp.NewFacultyHandler(facultySvc)

	studentSvc := studentService.NewStudentService(studentRepo, facultyRepo)
	studentHandler := studentHttp.NewStudentHandler(studentSvc)

	statSvc := statService.NewStatService(studentRepo)
	statHandler := statHttp.NewStatHandler(statSvc)

	locker := lock.New(deps.Redis, cfg.AvatarLockTTL)
	avatarSvc := avatarService.NewAvatarService(avatarRepo, studentRepo, deps.Storage, locker)
	avatarHandler := avatarHttp.NewAvatarHandler(avatarSvc, cfg.MaxAvatarSize)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	// multipart parts above this are spooled to disk
	router.MaxMultipartMemory = cfg.MaxAvatarSize

	s := &Server{
		engine:      router,
		db:          deps.DB,
		redisClient: deps.Redis,
		cron:        jobs.NewCronManager(avatarSvc, cfg.AvatarCleanupSchedule),
	}

	router.GET("/health", s.health)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)
	guard := authMiddleware.RequireAuth()

	faculty := router.Group("/faculty")
	{
		faculty.POST("", guard, facultyHandler.CreateFaculty)
		faculty.GET("", facultyHandler.FindFaculties)
		faculty.GET("/name_or_color", facultyHandler.FindByNameOrColor)
		faculty.GET("/search", facultyHandler.SearchFaculties)
		faculty.GET("/student/:id", facultyHandler.GetFacultyStudents)
		faculty.GET("/:id", facultyHandler.GetFaculty)
		faculty.PUT("/:id", guard, facultyHandler.UpdateFaculty)
		faculty.DELETE("/:id", guard, facultyHandler.DeleteFaculty)
	}

	student := router.Group("/student")
	{
		student.POST("", guard, studentHandler.CreateStudent)
		student.GET("", studentHandler.FindStudents)
		student.GET("/between/:min", studentHandler.FindStudentsBetween)
		student.GET("/faculty/:id", studentHandler.GetStudentFaculty)
		student.GET("/quantity", statHandler.GetStudentsQuantity)
		student.GET("/average-age", statHandler.GetStudentsAverageAge)
		student.GET("/last-five", statHandler.GetLastFiveStudents)
		student.GET("/:id", studentHandler.GetStudent)
		student.PUT("/:id", guard, studentHandler.UpdateStudent)
		student.DELETE("/:id", guard, studentHandler.DeleteStudent)

		student.POST("/:id/avatar", guard, avatarHandler.UploadAvatar)
		student.GET("/:id/avatar", avatarHandler.DownloadAvatar)
		student.GET("/:id/avatar/preview", avatarHandler.PreviewAvatar)
	}

	router.GET("/avatar", avatarHandler.ListAvatars)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// StartJobs schedules the background jobs; StopJobs waits for a running job to finish.
func (s *Server) StartJobs() error {
	return s.cron.Start()
}

func (s *Server) StopJobs() {
	s.cron.Stop()
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"status": "ok", "database": "up"}
	code := http.StatusOK

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		status["status"] = "degraded"
		status["database"] = "down"
		code = http.StatusServiceUnavailable
	}

	if s.redisClient != nil {
		status["redis"] = "up"
		if err := s.redisClient.Ping(ctx).Err(); err != nil {
			status["status"] = "degraded"
			status["redis"] = "down"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, status)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
