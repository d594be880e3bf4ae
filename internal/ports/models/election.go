package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Election lifecycle states
const (
	ElectionPending = "pending"
	ElectionRunning = "running"
	ElectionEnded   = "ended"
)

// Election is the single election record. It is created lazily on first
// access and only ever updated in place, never duplicated.
type Election struct {
	ID        string     `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string     `gorm:"size:255;not null;default:'General Election'" json:"name"`
	Status    string     `gorm:"size:16;not null;default:'pending'" json:"status"`
	StartTime *time.Time `gorm:"column:start_time" json:"start_time"`
	EndTime   *time.Time `gorm:"column:end_time" json:"end_time"`
}

// TableName specifies the table name for Election
func (Election) TableName() string {
	return "elections"
}

func (e *Election) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Name == "" {
		e.Name = "General Election"
	}
	if e.Status == "" {
		e.Status = ElectionPending
	}
	return nil
}

// IsOpenForVoting reports whether ballots are currently admissible.
// Expiry of EndTime does not close the election on its own; an admin
// must end it explicitly. The deadline is surfaced as remaining time only.
func (e *Election) IsOpenForVoting() bool {
	return e.Status == ElectionRunning
}

// RemainingTime returns the time left until EndTime, zero once elapsed
// or when the election is not running.
func (e *Election) RemainingTime(now time.Time) time.Duration {
	if e.Status != ElectionRunning || e.EndTime == nil {
		return 0
	}
	remaining := e.EndTime.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// StartElectionRequest defines the input for starting the election
type StartElectionRequest struct {
	EndTime time.Time `json:"end_time" binding:"required"`
}

// ElectionStatusResponse is returned by the status endpoint
type ElectionStatusResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	StartTime        *time.Time `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	RemainingSeconds int64      `json:"remaining_seconds"`
}
