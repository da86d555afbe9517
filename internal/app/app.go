package app

import (
	"database/sql"
	"fmt"
	"log"

	"prolync/internal/config"
	"prolync/internal/handlers"
	"prolync/internal/middleware"
	"prolync/internal/pdf"
	"prolync/internal/realtime"
	"prolync/internal/repositories"
	"prolync/internal/routes"
	"prolync/internal/services"
	"prolync/internal/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	_ "prolync/docs"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.SetJWTKey(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	mentorRepo := repositories.NewMentorRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	enrollmentRepo := repositories.NewEnrollmentRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	learningRepo := repositories.NewLearningRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	problemRepo := repositories.NewProblemRepository(db)
	certificateRepo := repositories.NewCertificateRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	// === Realtime ===
	hub := realtime.NewPresenceHub()

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	notifier := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID)

	activityService := services.NewActivityService(activityRepo, hub)
	otpService := services.NewOTPService(otpRepo, userRepo, emailService)
	userService := services.NewUserService(
		userRepo,
		adminRepo,
		otpService,
		authService,
		activityService,
		emailService,
		notifier,
		cfg.Auth.AdminEmail,
	)
	mentorshipService := services.NewMentorshipService(mentorRepo, bookingRepo, userRepo, activityService)
	courseService := services.NewCourseService(courseRepo, enrollmentRepo, activityService)
	statsService := services.NewStatsService(learningRepo, enrollmentRepo, userRepo, courseRepo)
	jobService := services.NewJobService(jobRepo)

	judgeClient := utils.NewJudgeClient(cfg.Judge.BaseURL, cfg.Judge.APIKey, cfg.Judge.DryRun)
	codingService := services.NewCodingService(problemRepo, judgeClient, activityService)

	certGen := pdf.NewCertificateGenerator(cfg.Certificates.RootDir, cfg.Certificates.FontPath)
	certificateService := services.NewCertificateService(certificateRepo, userRepo, courseRepo, certGen, activityService)
	contactService := services.NewContactService(contactRepo, notifier)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService)
	mentorshipHandler := handlers.NewMentorshipHandler(mentorshipService)
	courseHandler := handlers.NewCourseHandler(courseService)
	studentHandler := handlers.NewStudentHandler(statsService, activityService)
	adminHandler := handlers.NewAdminHandler(userService, statsService, activityService)
	jobHandler := handlers.NewJobHandler(jobService)
	codingHandler := handlers.NewCodingHandler(codingService)
	certificateHandler := handlers.NewCertificateHandler(certificateService)
	contactHandler := handlers.NewContactHandler(contactService)
	wsHandler := handlers.NewWSHandler(hub)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	routes.SetupRoutes(
		router,
		authHandler,
		mentorshipHandler,
		courseHandler,
		studentHandler,
		adminHandler,
		jobHandler,
		codingHandler,
		certificateHandler,
		contactHandler,
		wsHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
