package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteLog is one row of the append-only vote ledger. Rows are immutable
// once written; they are only removed by the admin reset paths. The
// composite unique index makes a second (student, position) entry a
// constraint violation rather than a double count.
type VoteLog struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	StudentRowID string    `gorm:"size:36;not null;uniqueIndex:idx_votelog_student_position;index" json:"student_row_id"`
	CandidateID  string    `gorm:"size:36;not null;index" json:"candidate_id"`
	Position     string    `gorm:"size:64;not null;uniqueIndex:idx_votelog_student_position" json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for VoteLog
func (VoteLog) TableName() string {
	return "vote_logs"
}

func (v *VoteLog) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// VoteLogEntry is a ledger row with display names resolved, as consumed
// by dashboards.
type VoteLogEntry struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	Position      string    `json:"position"`
	CreatedAt     time.Time `json:"created_at"`
}

// BallotRequest defines the input for casting a full ballot: exactly one
// candidate per open position.
type BallotRequest struct {
	Selections map[string]string `json:"selections" binding:"required"`
}

// BallotReceipt is returned after a committed (or already committed)
// ballot.
type BallotReceipt struct {
	AlreadyVoted    bool             `json:"already_voted"`
	VotedCandidates []VotedCandidate `json:"voted_candidates"`
}

// BallotCommit carries the effects of one committed ballot to the
// notifier: the new ledger rows and the updated per-candidate totals.
type BallotCommit struct {
	Entries       []VoteLogEntry   `json:"entries"`
	UpdatedTotals map[string]int64 `json:"updated_totals"`
}
