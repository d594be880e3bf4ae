package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student roles. Teachers are the admin-equivalent role.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// Student is a voter account. HasVoted flips to true exactly when the
// student holds one VotedPosition per distinct open position.
type Student struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	StudentID   string    `gorm:"size:64;not null;uniqueIndex" json:"student_id"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	Role        string    `gorm:"size:16;not null;default:'student'" json:"role"`
	HasVoted    bool      `gorm:"not null;default:false" json:"has_voted"`
	IsSuspended bool      `gorm:"not null;default:false" json:"is_suspended"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	VotedPositions []VotedPosition `gorm:"foreignKey:StudentRowID;references:ID" json:"voted_positions"`
}

// TableName specifies the table name for Student
func (Student) TableName() string {
	return "students"
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Role == "" {
		s.Role = RoleStudent
	}
	return nil
}

// VotedPosition records one (position, candidate) choice on a student's
// ballot. The composite unique index is the durable guard against a
// student holding two choices for the same office.
type VotedPosition struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	StudentRowID string    `gorm:"size:36;not null;uniqueIndex:idx_voted_student_position" json:"-"`
	Position     string    `gorm:"size:64;not null;uniqueIndex:idx_voted_student_position" json:"position"`
	CandidateID  string    `gorm:"size:36;not null" json:"candidate_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for VotedPosition
func (VotedPosition) TableName() string {
	return "voted_positions"
}

func (v *VotedPosition) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// AddStudentRequest defines the input for registering a voter
type AddStudentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role"`
}

// UpdatePasswordRequest defines the input for an admin password reset
type UpdatePasswordRequest struct {
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// VotedCandidate is one line of a student's vote slip
type VotedCandidate struct {
	Position      string `json:"position"`
	CandidateName string `json:"candidate_name"`
	Image         string `json:"image"`
}
