package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mgarcia/healthlifting-app/internal/domain"
	"mgarcia/healthlifting-app/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	healthliftingService service.HealthliftingService,
	trainingSheetService service.TrainingSheetService,
) {
	authHandler := NewAuthHandler(authService)
	athleteHandler := NewAthleteHandler(healthliftingService)
	coachHandler := NewCoachHandler(healthliftingService)
	appointmentHandler := NewAppointmentHandler(healthliftingService)
	trainingSheetHandler := NewTrainingSheetHandler(trainingSheetService)

	authMiddleware := AuthMiddleware(jwtSecret)
	staffOnly := RoleMiddleware(domain.RoleAdmin, domain.RoleStaff)
	adminOnly := RoleMiddleware(domain.RoleAdmin)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Athlete Routes ---
		athleteGroup := protected.Group("/athletes")
		athleteGroup.Use(staffOnly)
		{
			athleteGroup.POST("", athleteHandler.CreateAthlete)
			athleteGroup.GET("", athleteHandler.GetAthletes)
			athleteGroup.GET("/:id", athleteHandler.GetAthlete)
			athleteGroup.PATCH("/:id", athleteHandler.PatchAthlete)
			athleteGroup.PUT("/:id", athleteHandler.ReplaceAthlete)
			athleteGroup.DELETE("/:id", adminOnly, athleteHandler.DeleteAthlete)

			athleteGroup.GET("/document/:document", athleteHandler.GetAthleteByDocument)
			athleteGroup.GET("/:id/appointments", appointmentHandler.GetAppointmentsByAthlete)
			athleteGroup.GET("/document/:document/appointments", appointmentHandler.GetAppointmentsByAthleteDocument)
			athleteGroup.GET("/:id/training-sheets", trainingSheetHandler.GetTrainingSheetsByAthlete)
		}

		// --- Coach Routes ---
		coachGroup := protected.Group("/coaches")
		coachGroup.Use(staffOnly)
		{
			coachGroup.POST("", coachHandler.CreateCoach)
			coachGroup.GET("", coachHandler.GetCoaches)
			coachGroup.GET("/:id", coachHandler.GetCoach)
			coachGroup.PATCH("/:id", coachHandler.PatchCoach)
			coachGroup.PUT("/:id", coachHandler.ReplaceCoach)
			coachGroup.DELETE("/:id", adminOnly, coachHandler.DeleteCoach)

			coachGroup.GET("/document/:document", coachHandler.GetCoachByDocument)
			coachGroup.GET("/:id/appointments", appointmentHandler.GetAppointmentsByCoach)
			coachGroup.GET("/document/:document/appointments", appointmentHandler.GetAppointmentsByCoachDocument)
			coachGroup.GET("/:id/training-sheets", trainingSheetHandler.GetTrainingSheetsByCoach)
		}

		// --- Appointment Routes ---
		appointmentGroup := protected.Group("/appointments")
		appointmentGroup.Use(staffOnly)
		{
			appointmentGroup.POST("", appointmentHandler.CreateAppointment)
			appointmentGroup.GET("", appointmentHandler.GetAppointments)
			appointmentGroup.GET("/:id", appointmentHandler.GetAppointment)
			appointmentGroup.PATCH("/:id", appointmentHandler.PatchAppointment)
			appointmentGroup.PUT("/:id", appointmentHandler.ReplaceAppointment)
			appointmentGroup.DELETE("/:id", adminOnly, appointmentHandler.DeleteAppointment)
		}

		// --- Training Sheet Routes ---
		sheetGroup := protected.Group("/training-sheets")
		sheetGroup.Use(staffOnly)
		{
			sheetGroup.POST("", trainingSheetHandler.CreateTrainingSheet)
			sheetGroup.GET("", trainingSheetHandler.GetTrainingSheets)
			sheetGroup.GET("/:id", trainingSheetHandler.GetTrainingSheet)
			sheetGroup.PATCH("/:id", trainingSheetHandler.PatchTrainingSheet)
			sheetGroup.PUT("/:id", trainingSheetHandler.ReplaceTrainingSheet)
			sheetGroup.DELETE("/:id", adminOnly, trainingSheetHandler.DeleteTrainingSheet)

			sheetGroup.POST("/:id/attachment", trainingSheetHandler.RequestAttachmentUpload)
			sheetGroup.GET("/:id/attachment", trainingSheetHandler.GetAttachmentDownloadURL)
		}
	}
}
