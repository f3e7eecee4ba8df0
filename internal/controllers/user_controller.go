package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"ecomap/internal/models"
)

// UserController serves the authenticated user's profile, own reports and
// dashboard aggregates.
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// dashboardStats groups the requester's reports by status.
type dashboardStats struct {
	TotalReports      int64 `json:"total_reports"`
	PendingReports    int64 `json:"pending_reports"`
	InProgressReports int64 `json:"in_progress_reports"`
	ResolvedReports   int64 `json:"resolved_reports"`
}

// Profile returns the public fields of the authenticated user. A valid token
// whose user row no longer exists is a 404.
func (uc *UserController) Profile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logrus.WithError(err).Error("Profile: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	})
}

// Reports returns the requester's own reports, most recent first.
func (uc *UserController) Reports(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var reports []models.Report
	if err := uc.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&reports).Error; err != nil {
		logrus.WithError(err).Error("UserReports: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// Dashboard returns the requester's report counts by status plus the nearby
// issue count. nearbyIssues is the global count of unresolved reports; there
// is no proximity filter.
func (uc *UserController) Dashboard(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var stats dashboardStats
	err := uc.DB.Model(&models.Report{}).
		Select(
			"COUNT(*) AS total_reports, "+
				"COUNT(CASE WHEN status = ? THEN 1 END) AS pending_reports, "+
				"COUNT(CASE WHEN status = ? THEN 1 END) AS in_progress_reports, "+
				"COUNT(CASE WHEN status = ? THEN 1 END) AS resolved_reports",
			models.StatusPending, models.StatusInProgress, models.StatusResolved,
		).
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		logrus.WithError(err).Error("Dashboard: could not aggregate reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var nearby int64
	if err := uc.DB.Model(&models.Report{}).Where("status <> ?", models.StatusResolved).Count(&nearby).Error; err != nil {
		logrus.WithError(err).Error("Dashboard: could not count nearby issues")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userReports":  stats,
		"nearbyIssues": nearby,
	})
}
