package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecomap/internal/auth"
	"ecomap/internal/controllers"
	"ecomap/internal/middleware"
)

func UserRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	ctrl := controllers.NewUserController(db)

	user := r.Group("/api/user")
	user.Use(middleware.RequireAuth(tokens))
	{
		user.GET("/profile", ctrl.Profile)
		user.GET("/reports", ctrl.Reports)
		user.GET("/dashboard", ctrl.Dashboard)
	}
}
