package routes

import (
	"database/sql"

	"attendance_app/handlers"
	"attendance_app/middleware"
	"attendance_app/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application. db may be nil
// when the file backend is in use.
func SetupRoutes(r *gin.Engine, st *store.Store, db *sql.DB, dataDir string, tokens *middleware.TokenService) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(tokens)
	healthHandler := handlers.NewHealthHandler(db, dataDir)
	studentHandler := handlers.NewStudentHandler(st)
	sessionHandler := handlers.NewSessionHandler(st)
	attendanceHandler := handlers.NewAttendanceHandler(st)
	fileHandler := handlers.NewFileHandler(st)

	// Public routes
	r.GET("/health", healthHandler.HealthCheck)
	r.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens), middleware.Serialize())
	{
		// Student routes
		protected.POST("/students", studentHandler.RegisterStudent)
		protected.GET("/students", studentHandler.GetStudents)
		protected.GET("/students/:index", studentHandler.GetStudent)

		// Session routes
		protected.POST("/sessions", sessionHandler.CreateSession)
		protected.GET("/sessions", sessionHandler.GetSessions)

		// Attendance routes
		protected.POST("/sessions/:number/attendance", attendanceHandler.MarkAttendance)
		protected.GET("/sessions/:number", attendanceHandler.GetReport)
		protected.GET("/sessions/:number/summary", attendanceHandler.GetSummary)
		protected.GET("/summaries", attendanceHandler.GetSummaries)

		// File routes
		protected.POST("/files/students/save", fileHandler.SaveStudents)
		protected.POST("/files/students/load", fileHandler.LoadStudents)
		protected.POST("/files/sessions/save", fileHandler.SaveSessions)
		protected.POST("/files/sessions/load", fileHandler.LoadSession)

		// Demo data
		protected.POST("/demo", fileHandler.SeedDemo)
	}
}
