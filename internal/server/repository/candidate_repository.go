package repository

import (
	"context"

	"election-service/internal/ports/models"

	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *CandidateRepository) WithTx(tx *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: tx}
}

// Create registers a new candidate
func (r *CandidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

// FindByID finds a candidate by id
func (r *CandidateRepository) FindByID(ctx context.Context, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&candidate).Error
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// FindByIDs returns the candidates matching the given ids.
func (r *CandidateRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&candidates).Error
	return candidates, err
}

// FindAll returns every candidate ordered by vote count descending.
func (r *CandidateRepository) FindAll(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.WithContext(ctx).Order("votes DESC").Find(&candidates).Error
	return candidates, err
}

// FindByPosition returns the candidates running for one position.
func (r *CandidateRepository) FindByPosition(ctx context.Context, position string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.WithContext(ctx).Where("position = ?", position).Order("votes DESC").Find(&candidates).Error
	return candidates, err
}

// DistinctPositions returns the set of positions with at least one
// registered candidate. The ballot completeness check is derived from
// this set, taken under the same transaction as the rest of a vote.
func (r *CandidateRepository) DistinctPositions(ctx context.Context) ([]string, error) {
	var positions []string
	err := r.db.WithContext(ctx).Model(&models.Candidate{}).Distinct("position").Order("position").Pluck("position", &positions).Error
	return positions, err
}

// IncrementVotes adjusts a candidate's counter by delta with a single
// atomic UPDATE, never an application-level read-modify-write.
func (r *CandidateRepository) IncrementVotes(ctx context.Context, id string, delta int64) error {
	return r.db.WithContext(ctx).Model(&models.Candidate{}).Where("id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta)).Error
}

// ZeroVotes resets every candidate's counter.
func (r *CandidateRepository) ZeroVotes(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&models.Candidate{}).Where("1 = 1").UpdateColumn("votes", 0).Error
}

// UpdateImage sets a candidate's photo URL.
func (r *CandidateRepository) UpdateImage(ctx context.Context, id, image string) error {
	return r.db.WithContext(ctx).Model(&models.Candidate{}).Where("id = ?", id).UpdateColumn("image", image).Error
}

// Delete removes a candidate
func (r *CandidateRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Candidate{}).Error
}
