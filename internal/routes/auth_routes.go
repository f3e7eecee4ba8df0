package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecomap/internal/auth"
	"ecomap/internal/controllers"
)

func AuthRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	ctrl := controllers.NewAuthController(db, tokens)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", ctrl.Register)
		authGroup.POST("/login", ctrl.Login)
	}
}
