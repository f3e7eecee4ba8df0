package models

import "time"

// VoteType is the closed set of vote directions.
type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

// Vote records one user's vote on one report. The composite unique index
// makes the insert itself enforce at-most-one vote per (report, user) pair,
// so concurrent duplicate requests fail at the store instead of racing a
// separate existence check.
type Vote struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReportID  uint      `json:"report_id" gorm:"not null;uniqueIndex:idx_votes_report_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_votes_report_user"`
	VoteType  VoteType  `json:"vote_type" gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidVoteType reports whether s is one of the allowed vote types.
func ValidVoteType(s string) bool {
	switch VoteType(s) {
	case VoteUp, VoteDown:
		return true
	}
	return false
}
