package repository

import (
	"context"

	"election-service/internal/ports/models"

	"gorm.io/gorm"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// Create stores a new issue report
func (r *IssueRepository) Create(ctx context.Context, issue *models.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

// FindAll returns every issue, newest first.
func (r *IssueRepository) FindAll(ctx context.Context) ([]models.Issue, error) {
	var issues []models.Issue
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&issues).Error
	return issues, err
}

// UpdateStatus changes an issue's status
func (r *IssueRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).Model(&models.Issue{}).Where("id = ?", id).UpdateColumn("status", status).Error
}
