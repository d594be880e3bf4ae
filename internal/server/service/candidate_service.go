package service

import (
	"context"
	"errors"
	"mime/multipart"

	"election-service/internal/adapters/database"
	"election-service/internal/ports/models"
	"election-service/internal/server/repository"

	"gorm.io/gorm"
)

var (
	ErrUnknownPosition       = errors.New("unknown position")
	ErrCustomPositionMissing = errors.New("custom position name is required")
	ErrCandidateNotFound     = errors.New("candidate not found")
)

// CandidateService manages the candidate registry and photo storage.
type CandidateService struct {
	candidateRepo *repository.CandidateRepository
	voteLogRepo   *repository.VoteLogRepository
	media         *database.MinIOClient
}

// NewCandidateService accepts a nil media client; photo upload and
// removal become no-ops.
func NewCandidateService(candidateRepo *repository.CandidateRepository, voteLogRepo *repository.VoteLogRepository, media *database.MinIOClient) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		voteLogRepo:   voteLogRepo,
		media:         media,
	}
}

// Add registers a candidate, optionally uploading a photo.
func (s *CandidateService) Add(ctx context.Context, req models.AddCandidateRequest, photo *multipart.FileHeader) (*models.Candidate, error) {
	if !models.ValidPosition(req.Position) {
		return nil, ErrUnknownPosition
	}
	customPosition := ""
	if req.Position == models.PositionCustom {
		if req.CustomPosition == "" {
			return nil, ErrCustomPositionMissing
		}
		customPosition = req.CustomPosition
	}

	candidate := &models.Candidate{
		Name:           req.Name,
		Position:       req.Position,
		CustomPosition: customPosition,
	}
	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	if photo != nil && s.media != nil {
		url, err := s.media.UploadImage(ctx, candidate.ID, photo)
		if err != nil {
			return nil, err
		}
		if err := s.candidateRepo.UpdateImage(ctx, candidate.ID, url); err != nil {
			return nil, err
		}
		candidate.Image = url
	}
	return candidate, nil
}

// List returns every candidate ordered by votes.
func (s *CandidateService) List(ctx context.Context) ([]models.Candidate, error) {
	return s.candidateRepo.FindAll(ctx)
}

// GroupedByPosition returns the ballot form data: candidates grouped by
// the office they run for.
func (s *CandidateService) GroupedByPosition(ctx context.Context) (map[string][]models.Candidate, error) {
	candidates, err := s.candidateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.Candidate)
	for _, cand := range candidates {
		grouped[cand.Position] = append(grouped[cand.Position], cand)
	}
	return grouped, nil
}

// Delete removes a candidate and its uploaded photo.
func (s *CandidateService) Delete(ctx context.Context, id string) error {
	candidate, err := s.candidateRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCandidateNotFound
	}
	if err != nil {
		return err
	}

	if err := s.candidateRepo.Delete(ctx, candidate.ID); err != nil {
		return err
	}
	if s.media != nil && candidate.Image != models.DefaultCandidateImage {
		// Photo removal is best-effort; the registry row is already gone.
		_ = s.media.RemoveImage(ctx, candidate.ID)
	}
	return nil
}

// Votes returns the ledger rows for one candidate.
func (s *CandidateService) Votes(ctx context.Context, id string) (*models.Candidate, []models.VoteLog, error) {
	candidate, err := s.candidateRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	logs, err := s.voteLogRepo.FindByCandidate(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return candidate, logs, nil
}

// PositionChart returns per-position aggregates for result charts.
func (s *CandidateService) PositionChart(ctx context.Context, position string) (*models.PositionChart, error) {
	candidates, err := s.candidateRepo.FindByPosition(ctx, position)
	if err != nil {
		return nil, err
	}

	chart := &models.PositionChart{
		Position: position,
		Labels:   make([]string, 0, len(candidates)),
		Votes:    make([]int64, 0, len(candidates)),
	}
	for _, cand := range candidates {
		chart.Labels = append(chart.Labels, cand.Name)
		chart.Votes = append(chart.Votes, cand.Votes)
		chart.TotalVotes += cand.Votes
	}
	return chart, nil
}

// DistinctPositions lists the positions with registered candidates.
func (s *CandidateService) DistinctPositions(ctx context.Context) ([]string, error) {
	return s.candidateRepo.DistinctPositions(ctx)
}
