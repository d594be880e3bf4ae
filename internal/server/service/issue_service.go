package service

import (
	"context"
	"errors"

	"election-service/internal/ports/models"
	"election-service/internal/server/repository"
)

var ErrInvalidIssueStatus = errors.New("invalid issue status")

// IssueService handles problem reports submitted from the login page.
type IssueService struct {
	issueRepo *repository.IssueRepository
}

func NewIssueService(issueRepo *repository.IssueRepository) *IssueService {
	return &IssueService{issueRepo: issueRepo}
}

// Submit stores a new issue report
func (s *IssueService) Submit(ctx context.Context, req models.SubmitIssueRequest) (*models.Issue, error) {
	issue := &models.Issue{
		Name:      req.Name,
		ClassName: req.ClassName,
		Problem:   req.Problem,
	}
	if err := s.issueRepo.Create(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// List returns every issue, newest first.
func (s *IssueService) List(ctx context.Context) ([]models.Issue, error) {
	return s.issueRepo.FindAll(ctx)
}

// UpdateStatus moves an issue between pending, in-progress and resolved.
func (s *IssueService) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.ValidIssueStatus(status) {
		return ErrInvalidIssueStatus
	}
	return s.issueRepo.UpdateStatus(ctx, id, status)
}
