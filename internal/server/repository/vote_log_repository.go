package repository

import (
	"context"

	"election-service/internal/ports/models"

	"gorm.io/gorm"
)

type VoteLogRepository struct {
	db *gorm.DB
}

func NewVoteLogRepository(db *gorm.DB) *VoteLogRepository {
	return &VoteLogRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *VoteLogRepository) WithTx(tx *gorm.DB) *VoteLogRepository {
	return &VoteLogRepository{db: tx}
}

// CreateBatch appends the given ledger rows in one insert.
func (r *VoteLogRepository) CreateBatch(ctx context.Context, logs []models.VoteLog) error {
	return r.db.WithContext(ctx).Create(&logs).Error
}

// FindAll returns the full ledger, oldest first.
func (r *VoteLogRepository) FindAll(ctx context.Context) ([]models.VoteLog, error) {
	var logs []models.VoteLog
	err := r.db.WithContext(ctx).Order("created_at").Find(&logs).Error
	return logs, err
}

// FindByStudent returns a student's ledger rows.
func (r *VoteLogRepository) FindByStudent(ctx context.Context, studentRowID string) ([]models.VoteLog, error) {
	var logs []models.VoteLog
	err := r.db.WithContext(ctx).Where("student_row_id = ?", studentRowID).Find(&logs).Error
	return logs, err
}

// FindByCandidate returns the ledger rows referencing one candidate.
func (r *VoteLogRepository) FindByCandidate(ctx context.Context, candidateID string) ([]models.VoteLog, error) {
	var logs []models.VoteLog
	err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).Find(&logs).Error
	return logs, err
}

// CountByCandidate returns the number of ledger rows referencing one
// candidate, for checking the counter invariant.
func (r *VoteLogRepository) CountByCandidate(ctx context.Context, candidateID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VoteLog{}).Where("candidate_id = ?", candidateID).Count(&count).Error
	return count, err
}

// DeleteByStudent removes a student's ledger rows.
func (r *VoteLogRepository) DeleteByStudent(ctx context.Context, studentRowID string) error {
	return r.db.WithContext(ctx).Where("student_row_id = ?", studentRowID).Delete(&models.VoteLog{}).Error
}

// DeleteAll truncates the ledger.
func (r *VoteLogRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.VoteLog{}).Error
}
