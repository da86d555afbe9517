package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"prolync/internal/handlers"
	"prolync/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	mentorshipHandler *handlers.MentorshipHandler,
	courseHandler *handlers.CourseHandler,
	studentHandler *handlers.StudentHandler,
	adminHandler *handlers.AdminHandler,
	jobHandler *handlers.JobHandler,
	codingHandler *handlers.CodingHandler,
	certificateHandler *handlers.CertificateHandler,
	contactHandler *handlers.ContactHandler,
	wsHandler *handlers.WSHandler,
) *gin.Engine {

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// realtime; the token rides in the query string
	r.GET("/ws", wsHandler.Connect)

	api := r.Group("/api")

	// ---- public
	auth := api.Group("/auth")
	{
		auth.POST("/send-otp", authHandler.SendOTP)
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/verify-admin-otp", authHandler.VerifyAdminOTP)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	api.GET("/mentorship/mentors", mentorshipHandler.ListMentors)
	api.GET("/mentorship/booked-slots/:mentor_id", mentorshipHandler.BookedSlots)

	// the catalog is public; a token, when present, personalizes it
	api.GET("/courses", middleware.LenientAuth(), courseHandler.List)
	api.GET("/courses/:id", courseHandler.GetByID)

	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/:id", jobHandler.GetByID)

	api.GET("/problems", codingHandler.ListProblems)
	api.GET("/problems/:id", codingHandler.GetProblem)

	api.GET("/certificates/verify/:code", certificateHandler.Verify)
	api.POST("/contact", contactHandler.Submit)

	// ---- protected
	protected := api.Group("", middleware.Protect())
	{
		protected.POST("/auth/change-password", authHandler.ChangePassword)
		protected.GET("/auth/me", authHandler.Me)

		protected.POST("/mentorship/book", mentorshipHandler.Book)

		protected.POST("/courses/:id/enroll", courseHandler.Enroll)
		protected.GET("/my-courses", courseHandler.MyCourses)

		protected.GET("/student/stats", studentHandler.Stats)
		protected.GET("/student/activity", studentHandler.Activity)
		protected.POST("/student/activity/log", studentHandler.LogActivity)

		protected.POST("/problems/:id/submit", codingHandler.Submit)
		protected.GET("/problems/:id/submissions", codingHandler.Submissions)
	}

	// ---- admin
	admin := api.Group("/admin", middleware.Protect(), middleware.RequireAdmin())
	{
		admin.GET("/stats", adminHandler.DashboardStats)
		admin.GET("/charts", adminHandler.ChartData)
		admin.GET("/activity", adminHandler.RecentActivity)
		admin.GET("/top-users", adminHandler.TopUsers)

		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.POST("/users/:id/reset-password", adminHandler.ResetUserPassword)

		admin.POST("/courses", courseHandler.Create)
		admin.PUT("/courses/:id", courseHandler.Update)
		admin.DELETE("/courses/:id", courseHandler.Delete)

		admin.POST("/jobs", jobHandler.Create)
		admin.PUT("/jobs/:id", jobHandler.Update)
		admin.DELETE("/jobs/:id", jobHandler.Delete)
	}

	// admin-only but outside the /admin prefix
	api.GET("/mentorship/sessions", middleware.Protect(), middleware.RequireAdmin(), mentorshipHandler.Sessions)
	api.POST("/certificates", middleware.Protect(), middleware.RequireAdmin(), certificateHandler.Issue)

	return r
}
