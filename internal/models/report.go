package models

import "time"

// Category is the closed set of issue categories.
type Category string

const (
	CategoryWaste Category = "waste"
	CategoryWater Category = "water"
	CategoryAir   Category = "air"
	CategoryOther Category = "other"
)

// Severity is the closed set of issue severities.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Status is the closed set of report lifecycle states.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in progress"
	StatusResolved   Status = "resolved"
)

const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
)

// Report is a user-submitted environmental issue. UserID is the owner and is
// immutable after creation; ImageURL is the stored filename of the uploaded
// photo, owned by exactly this row.
type Report struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"size:500;not null"`
	Category    Category  `json:"category" gorm:"type:varchar(20);not null"`
	Severity    Severity  `json:"severity" gorm:"type:varchar(20);not null"`
	Location    string    `json:"location" gorm:"not null"`
	Status      Status    `json:"status" gorm:"type:varchar(20);default:pending;index"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	ImageURL    string    `json:"image_url,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidCategory reports whether s is one of the allowed categories.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryWaste, CategoryWater, CategoryAir, CategoryOther:
		return true
	}
	return false
}

// ValidSeverity reports whether s is one of the allowed severities.
func ValidSeverity(s string) bool {
	switch Severity(s) {
	case SeverityMinor, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the allowed statuses.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}
