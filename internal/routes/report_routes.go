package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecomap/internal/auth"
	"ecomap/internal/controllers"
	"ecomap/internal/middleware"
	"ecomap/internal/storage"
)

func ReportRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService, uploads *storage.UploadStore) {
	reports := controllers.NewReportController(db, uploads)
	votes := controllers.NewVoteController(db)
	comments := controllers.NewCommentController(db)

	api := r.Group("/api")
	{
		api.GET("/reports", reports.List)
		api.GET("/reports/:id", reports.Get)
		api.GET("/reports/:id/votes", votes.List)
		api.GET("/reports/:id/comments", comments.List)
		api.GET("/map/reports", reports.MapFeatures)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(tokens))
		{
			protected.POST("/reports", reports.Create)
			protected.PATCH("/reports/:id", reports.UpdateStatus)
			protected.DELETE("/reports/:id", reports.Delete)
			protected.POST("/reports/:id/vote", votes.Vote)
			protected.POST("/reports/:id/comments", comments.Add)
		}
	}
}
