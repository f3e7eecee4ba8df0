package routes

import (
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecomap/internal/auth"
	"ecomap/internal/storage"
)

// SetupRouter wires every controller onto a gin engine. The DB handle, token
// service and upload store are injected so tests can substitute fixtures.
func SetupRouter(db *gorm.DB, tokens *auth.TokenService, uploads *storage.UploadStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Uploaded report images are public by filename
	r.Static("/uploads", uploads.Dir())

	AuthRoutes(r, db, tokens)
	ReportRoutes(r, db, tokens, uploads)
	UserRoutes(r, db, tokens)

	return r
}
