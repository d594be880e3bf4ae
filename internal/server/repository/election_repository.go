package repository

import (
	"context"

	"election-service/internal/ports/models"

	"gorm.io/gorm"
)

type ElectionRepository struct {
	db *gorm.DB
}

func NewElectionRepository(db *gorm.DB) *ElectionRepository {
	return &ElectionRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ElectionRepository) WithTx(tx *gorm.DB) *ElectionRepository {
	return &ElectionRepository{db: tx}
}

// Get returns the singleton election record, creating it lazily on first
// access.
func (r *ElectionRepository) Get(ctx context.Context) (*models.Election, error) {
	var election models.Election
	err := r.db.WithContext(ctx).FirstOrCreate(&election, models.Election{Name: "General Election"}).Error
	if err != nil {
		return nil, err
	}
	return &election, nil
}

// Update applies the given column updates to the singleton record.
func (r *ElectionRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Election{}).Where("id = ?", id).Updates(updates).Error
}
