package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"ecomap/internal/models"
)

// VoteController records and lists votes on reports.
type VoteController struct {
	DB *gorm.DB
}

func NewVoteController(db *gorm.DB) *VoteController {
	return &VoteController{DB: db}
}

// Vote records the requester's vote on a report. The unique index on
// (report_id, user_id) makes the insert the only duplicate check, so
// concurrent requests cannot slip a second vote through.
func (vc *VoteController) Vote(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	reportID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	var body struct {
		VoteType string `json:"vote_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidVoteType(body.VoteType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vote type"})
		return
	}

	vote := models.Vote{
		ReportID: uint(reportID),
		UserID:   userID,
		VoteType: models.VoteType(body.VoteType),
	}
	if err := vc.DB.Create(&vote).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User has already voted on this report"})
			return
		}
		logrus.WithError(err).Error("Vote: could not record vote")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vote recorded successfully"})
}

// List returns the raw vote types for a report. Callers tally upvotes and
// downvotes themselves.
func (vc *VoteController) List(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	var votes []models.Vote
	if err := vc.DB.Where("report_id = ?", reportID).Find(&votes).Error; err != nil {
		logrus.WithError(err).Error("ListVotes: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]gin.H, 0, len(votes))
	for _, v := range votes {
		out = append(out, gin.H{"vote_type": v.VoteType})
	}
	c.JSON(http.StatusOK, out)
}
