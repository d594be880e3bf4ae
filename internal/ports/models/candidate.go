package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionCustom marks a candidate running for an office outside the
// fixed enumeration; CustomPosition carries the display name.
const PositionCustom = "Custom"

// DefaultCandidateImage is used until a photo is uploaded.
const DefaultCandidateImage = "/images/default-candidate.jpg"

// Positions is the fixed set of electable offices.
var Positions = []string{
	"Head Boy",
	"Head Girl",
	"Sports Prefect",
	"Library Prefect",
	"Laboratory Prefect",
	"Time Keeper",
	"Dining-hall Prefect",
	"Labour Prefect",
	"Social Prefect",
	"Health Prefect",
	"Chapel Prefect",
	PositionCustom,
}

// ValidPosition reports whether pos is one of the known offices.
func ValidPosition(pos string) bool {
	for _, p := range Positions {
		if p == pos {
			return true
		}
	}
	return false
}

// Candidate represents a person running for one position. Votes is a live
// counter kept equal to the number of ledger entries referencing the
// candidate; it is only ever changed by atomic increments and the admin
// reset paths.
type Candidate struct {
	ID             string `gorm:"primaryKey;type:uuid" json:"id"`
	Name           string `gorm:"size:255;not null" json:"name"`
	Position       string `gorm:"size:64;not null;index" json:"position"`
	CustomPosition string `gorm:"size:64;default:''" json:"custom_position"`
	Votes          int64  `gorm:"not null;default:0" json:"votes"`
	Image          string `gorm:"size:512;default:'/images/default-candidate.jpg'" json:"image"`
}

// TableName specifies the table name for Candidate
func (Candidate) TableName() string {
	return "candidates"
}

func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Image == "" {
		c.Image = DefaultCandidateImage
	}
	return nil
}

// DisplayPosition resolves the office name shown to voters.
func (c *Candidate) DisplayPosition() string {
	if c.Position == PositionCustom && c.CustomPosition != "" {
		return c.CustomPosition
	}
	return c.Position
}

// AddCandidateRequest defines the input for registering a candidate
type AddCandidateRequest struct {
	Name           string `form:"name" binding:"required"`
	Position       string `form:"position" binding:"required"`
	CustomPosition string `form:"custom_position"`
}

// PositionChart is per-position aggregate data for result charts
type PositionChart struct {
	Position   string   `json:"position"`
	Labels     []string `json:"labels"`
	Votes      []int64  `json:"votes"`
	TotalVotes int64    `json:"total_votes"`
}
