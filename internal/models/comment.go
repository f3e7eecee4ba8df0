package models

import "time"

// Comment is an append-only remark on a report. No edit or delete path
// exists.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReportID  uint      `json:"report_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
