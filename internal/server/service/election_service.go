package service

import (
	"context"
	"time"

	"election-service/internal/ports/models"
	"election-service/internal/server/repository"

	"gorm.io/gorm"
)

// ElectionService drives the election lifecycle: pending -> running ->
// ended, with reset returning any state to pending.
type ElectionService struct {
	db            *gorm.DB
	electionRepo  *repository.ElectionRepository
	candidateRepo *repository.CandidateRepository
	studentRepo   *repository.StudentRepository
	voteLogRepo   *repository.VoteLogRepository
}

func NewElectionService(
	db *gorm.DB,
	electionRepo *repository.ElectionRepository,
	candidateRepo *repository.CandidateRepository,
	studentRepo *repository.StudentRepository,
	voteLogRepo *repository.VoteLogRepository,
) *ElectionService {
	return &ElectionService{
		db:            db,
		electionRepo:  electionRepo,
		candidateRepo: candidateRepo,
		studentRepo:   studentRepo,
		voteLogRepo:   voteLogRepo,
	}
}

// Status returns the current election state, creating the record on
// first access.
func (s *ElectionService) Status(ctx context.Context) (*models.ElectionStatusResponse, error) {
	election, err := s.electionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ElectionStatusResponse{
		ID:               election.ID,
		Name:             election.Name,
		Status:           election.Status,
		StartTime:        election.StartTime,
		EndTime:          election.EndTime,
		RemainingSeconds: int64(election.RemainingTime(time.Now()).Seconds()),
	}, nil
}

// Start opens the election for voting. The end time must be strictly in
// the future; it is informational only and never closes the election by
// itself.
func (s *ElectionService) Start(ctx context.Context, endTime time.Time) error {
	now := time.Now()
	if !endTime.After(now) {
		return models.ErrInvalidEndTime
	}

	election, err := s.electionRepo.Get(ctx)
	if err != nil {
		return err
	}
	return s.electionRepo.Update(ctx, election.ID, map[string]interface{}{
		"status":     models.ElectionRunning,
		"start_time": now,
		"end_time":   endTime,
	})
}

// End closes the election unconditionally.
func (s *ElectionService) End(ctx context.Context) error {
	election, err := s.electionRepo.Get(ctx)
	if err != nil {
		return err
	}
	return s.electionRepo.Update(ctx, election.ID, map[string]interface{}{
		"status": models.ElectionEnded,
	})
}

// Reset returns the election to pending and clears every trace of the
// previous term: candidate counters, student ballots, and the ledger.
// The cascade is one transaction; a partial reset would break the
// counter/ledger invariant.
func (s *ElectionService) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		electionRepo := s.electionRepo.WithTx(tx)

		election, err := electionRepo.Get(ctx)
		if err != nil {
			return err
		}
		if err := s.candidateRepo.WithTx(tx).ZeroVotes(ctx); err != nil {
			return err
		}
		if err := s.studentRepo.WithTx(tx).ClearAllVotes(ctx); err != nil {
			return err
		}
		if err := s.voteLogRepo.WithTx(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return electionRepo.Update(ctx, election.ID, map[string]interface{}{
			"status":     models.ElectionPending,
			"start_time": nil,
			"end_time":   nil,
		})
	})
}
