package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Issue statuses
const (
	IssuePending    = "pending"
	IssueInProgress = "in-progress"
	IssueResolved   = "resolved"
)

// Issue is a problem report submitted from the login page.
type Issue struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	ClassName string    `gorm:"size:64;not null" json:"class_name"`
	Problem   string    `gorm:"type:text;not null" json:"problem"`
	Status    string    `gorm:"size:16;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Issue
func (Issue) TableName() string {
	return "issues"
}

func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.Status == "" {
		i.Status = IssuePending
	}
	return nil
}

// ValidIssueStatus reports whether s is a known issue status.
func ValidIssueStatus(s string) bool {
	return s == IssuePending || s == IssueInProgress || s == IssueResolved
}

// SubmitIssueRequest defines the input for reporting an issue
type SubmitIssueRequest struct {
	Name      string `json:"name" binding:"required"`
	ClassName string `json:"class_name" binding:"required"`
	Problem   string `json:"problem" binding:"required"`
}

// UpdateIssueStatusRequest defines the input for an admin status change
type UpdateIssueStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
