package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"gorm.io/gorm"

	"ecomap/internal/models"
	"ecomap/internal/storage"
)

// ReportController handles the report lifecycle: creation with an optional
// image upload, listing, status updates and deletion.
type ReportController struct {
	DB      *gorm.DB
	Uploads *storage.UploadStore
}

func NewReportController(db *gorm.DB, uploads *storage.UploadStore) *ReportController {
	return &ReportController{DB: db, Uploads: uploads}
}

// Create accepts a multipart form so the report fields can travel alongside
// the image file.
func (rc *ReportController) Create(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	category := c.PostForm("category")
	severity := c.PostForm("severity")
	location := strings.TrimSpace(c.PostForm("location"))
	userIDStr := c.PostForm("user_id")

	if title == "" || description == "" || category == "" || severity == "" || location == "" || userIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	if len(title) > models.TitleMaxLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title too long"})
		return
	}
	if len(description) > models.DescriptionMaxLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description too long"})
		return
	}
	if !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}
	if !models.ValidSeverity(severity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid severity"})
		return
	}

	status := c.PostForm("status")
	if status == "" {
		status = string(models.StatusPending)
	} else if !models.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	lat, err := optionalCoord(c.PostForm("latitude"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	lng, err := optionalCoord(c.PostForm("longitude"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}

	var imageName string
	if file, err := c.FormFile("image"); err == nil {
		imageName, err = rc.Uploads.NewFileName(file.Filename)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only images are allowed"})
			return
		}
		if err := c.SaveUploadedFile(file, rc.Uploads.Path(imageName)); err != nil {
			logrus.WithError(err).Error("CreateReport: could not store image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
	}

	report := models.Report{
		Title:       title,
		Description: description,
		Category:    models.Category(category),
		Severity:    models.Severity(severity),
		Location:    location,
		Status:      models.Status(status),
		UserID:      uint(userID),
		ImageURL:    imageName,
		Latitude:    lat,
		Longitude:   lng,
	}
	if err := rc.DB.Create(&report).Error; err != nil {
		rc.Uploads.Remove(imageName)
		logrus.WithError(err).Error("CreateReport: could not create report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// List returns all reports, optionally narrowed by exact status and location
// matches. Row order is not part of the contract.
func (rc *ReportController) List(c *gin.Context) {
	query := rc.DB.Model(&models.Report{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location = ?", location)
	}

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		logrus.WithError(err).Error("ListReports: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// Get returns a single report by id.
func (rc *ReportController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			logrus.WithError(err).Error("GetReport: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// UpdateStatus moves a report through its lifecycle. Only the owner or an
// admin may do so.
func (rc *ReportController) UpdateStatus(c *gin.Context) {
	requesterID := c.MustGet("user_id").(uint)
	requesterRole := c.MustGet("role").(models.Role)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			logrus.WithError(err).Error("UpdateReportStatus: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	if !models.CanModifyReport(requesterID, requesterRole, report.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to modify this report"})
		return
	}

	if err := rc.DB.Model(&report).Update("status", models.Status(body.Status)).Error; err != nil {
		logrus.WithError(err).Error("UpdateReportStatus: could not update report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Delete removes a report and then its stored image. The file removal runs
// after the record deletion and is best effort; a failure is logged but the
// deletion stands.
func (rc *ReportController) Delete(c *gin.Context) {
	requesterID := c.MustGet("user_id").(uint)
	requesterRole := c.MustGet("role").(models.Role)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			logrus.WithError(err).Error("DeleteReport: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	if !models.CanModifyReport(requesterID, requesterRole, report.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to delete this report"})
		return
	}

	if err := rc.DB.Delete(&models.Report{}, report.ID).Error; err != nil {
		logrus.WithError(err).Error("DeleteReport: could not delete report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	rc.Uploads.Remove(report.ImageURL)

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}

// MapFeatures returns every report that carries coordinates as a GeoJSON
// FeatureCollection, ready for the map page to render.
func (rc *ReportController) MapFeatures(c *gin.Context) {
	var reports []models.Report
	if err := rc.DB.Where("latitude IS NOT NULL AND longitude IS NOT NULL").Find(&reports).Error; err != nil {
		logrus.WithError(err).Error("MapFeatures: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	fc := geojson.FeatureCollection{Features: []*geojson.Feature{}}
	for _, r := range reports {
		point := geom.NewPointFlat(geom.XY, []float64{*r.Longitude, *r.Latitude})
		point.SetSRID(4326)
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       strconv.FormatUint(uint64(r.ID), 10),
			Geometry: point,
			Properties: map[string]interface{}{
				"title":    r.Title,
				"category": r.Category,
				"severity": r.Severity,
				"status":   r.Status,
			},
		})
	}

	c.JSON(http.StatusOK, &fc)
}

// optionalCoord parses an optional coordinate form value.
func optionalCoord(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
