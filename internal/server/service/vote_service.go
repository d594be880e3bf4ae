package service

import (
	"context"
	"errors"

	"election-service/internal/ports/models"
	"election-service/internal/server/repository"

	"gorm.io/gorm"
)

// errWriteConflict marks a commit that lost a race: a duplicate-key hit
// on the ledger or ballot tables, or a has_voted flip that found the
// flag already set. The submission is retried once; the retry normally
// observes AlreadyVoted.
var errWriteConflict = errors.New("ballot write conflict")

// VoteService is the vote transaction coordinator. SubmitBallot
// validates a full ballot and applies it atomically across the candidate
// counters, the student's ballot record, and the vote ledger.
type VoteService struct {
	db            *gorm.DB
	electionRepo  *repository.ElectionRepository
	studentRepo   *repository.StudentRepository
	candidateRepo *repository.CandidateRepository
	voteLogRepo   *repository.VoteLogRepository
}

func NewVoteService(
	db *gorm.DB,
	electionRepo *repository.ElectionRepository,
	studentRepo *repository.StudentRepository,
	candidateRepo *repository.CandidateRepository,
	voteLogRepo *repository.VoteLogRepository,
) *VoteService {
	return &VoteService{
		db:            db,
		electionRepo:  electionRepo,
		studentRepo:   studentRepo,
		candidateRepo: candidateRepo,
		voteLogRepo:   voteLogRepo,
	}
}

// SubmitBallot validates and commits one student's complete ballot.
// Preconditions are checked before any write; the write phase is one
// transaction that either fully applies or fully rolls back. A lost race
// is retried once so the loser surfaces AlreadyVoted instead of a raw
// conflict.
func (s *VoteService) SubmitBallot(ctx context.Context, studentRowID string, selections map[string]string) (*models.BallotCommit, error) {
	commit, err := s.trySubmit(ctx, studentRowID, selections)
	if !errors.Is(err, errWriteConflict) {
		return commit, err
	}

	commit, err = s.trySubmit(ctx, studentRowID, selections)
	if errors.Is(err, errWriteConflict) {
		return nil, models.ErrTransactionFailed
	}
	return commit, err
}

func (s *VoteService) trySubmit(ctx context.Context, studentRowID string, selections map[string]string) (*models.BallotCommit, error) {
	var commit *models.BallotCommit

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		electionRepo := s.electionRepo.WithTx(tx)
		studentRepo := s.studentRepo.WithTx(tx)
		candidateRepo := s.candidateRepo.WithTx(tx)
		voteLogRepo := s.voteLogRepo.WithTx(tx)

		election, err := electionRepo.Get(ctx)
		if err != nil {
			return err
		}
		if !election.IsOpenForVoting() {
			return models.ErrElectionNotRunning
		}

		student, err := studentRepo.FindByID(ctx, studentRowID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrStudentNotFound
		}
		if err != nil {
			return err
		}
		if student.IsSuspended {
			return models.ErrStudentSuspended
		}
		if student.HasVoted {
			return models.ErrAlreadyVoted
		}

		// The set of required positions is derived from the candidate
		// registry inside this transaction, so a position added or
		// removed mid-vote cannot skew the completeness check.
		positions, err := candidateRepo.DistinctPositions(ctx)
		if err != nil {
			return err
		}
		if len(positions) == 0 {
			return models.ErrNoOpenPositions
		}

		required := make(map[string]bool, len(positions))
		for _, pos := range positions {
			if _, ok := selections[pos]; !ok {
				return &models.IncompleteBallotError{Position: pos}
			}
			required[pos] = true
		}
		for pos, candidateID := range selections {
			if !required[pos] {
				return &models.InvalidCandidateError{Position: pos, CandidateID: candidateID}
			}
		}

		candidateIDs := make([]string, 0, len(positions))
		for _, pos := range positions {
			candidateIDs = append(candidateIDs, selections[pos])
		}
		candidates, err := candidateRepo.FindByIDs(ctx, candidateIDs)
		if err != nil {
			return err
		}
		candidatesByID := make(map[string]models.Candidate, len(candidates))
		for _, cand := range candidates {
			candidatesByID[cand.ID] = cand
		}
		for pos, candidateID := range selections {
			cand, ok := candidatesByID[candidateID]
			if !ok || cand.Position != pos {
				return &models.InvalidCandidateError{Position: pos, CandidateID: candidateID}
			}
		}

		// Atomic phase. Counter increments are single UPDATEs; the
		// unique indexes on the ledger and ballot tables reject a
		// concurrent double vote, rolling back everything above.
		logs := make([]models.VoteLog, 0, len(positions))
		choices := make([]models.VotedPosition, 0, len(positions))
		for _, pos := range positions {
			candidateID := selections[pos]
			if err := candidateRepo.IncrementVotes(ctx, candidateID, 1); err != nil {
				return err
			}
			logs = append(logs, models.VoteLog{
				StudentRowID: student.ID,
				CandidateID:  candidateID,
				Position:     pos,
			})
			choices = append(choices, models.VotedPosition{
				StudentRowID: student.ID,
				Position:     pos,
				CandidateID:  candidateID,
			})
		}

		if err := voteLogRepo.CreateBatch(ctx, logs); err != nil {
			return asConflict(err)
		}
		if err := studentRepo.AppendVotedPositions(ctx, choices); err != nil {
			return asConflict(err)
		}

		if len(student.VotedPositions)+len(choices) >= len(positions) {
			rows, err := studentRepo.MarkVoted(ctx, student.ID)
			if err != nil {
				return err
			}
			if rows == 0 {
				return errWriteConflict
			}
		}

		// Re-read the touched counters inside the transaction so the
		// notifier reports committed totals.
		totals := make(map[string]int64, len(candidateIDs))
		updated, err := candidateRepo.FindByIDs(ctx, candidateIDs)
		if err != nil {
			return err
		}
		for _, cand := range updated {
			totals[cand.ID] = cand.Votes
		}

		entries := make([]models.VoteLogEntry, 0, len(logs))
		for _, entry := range logs {
			entries = append(entries, models.VoteLogEntry{
				ID:            entry.ID,
				StudentID:     student.StudentID,
				CandidateID:   entry.CandidateID,
				CandidateName: candidatesByID[entry.CandidateID].Name,
				Position:      entry.Position,
				CreatedAt:     entry.CreatedAt,
			})
		}

		commit = &models.BallotCommit{
			Entries:       entries,
			UpdatedTotals: totals,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return commit, nil
}

// asConflict folds duplicate-key failures into the retryable conflict
// marker; anything else aborts the transaction as-is.
func asConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errWriteConflict
	}
	return err
}

// Receipt returns the student's vote slip: the choices already recorded,
// with candidate names resolved.
func (s *VoteService) Receipt(ctx context.Context, studentRowID string) (*models.BallotReceipt, error) {
	student, err := s.studentRepo.FindByID(ctx, studentRowID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}

	receipt := &models.BallotReceipt{
		AlreadyVoted:    student.HasVoted,
		VotedCandidates: make([]models.VotedCandidate, 0, len(student.VotedPositions)),
	}
	if len(student.VotedPositions) == 0 {
		return receipt, nil
	}

	ids := make([]string, 0, len(student.VotedPositions))
	for _, vp := range student.VotedPositions {
		ids = append(ids, vp.CandidateID)
	}
	candidates, err := s.candidateRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Candidate, len(candidates))
	for _, cand := range candidates {
		byID[cand.ID] = cand
	}
	for _, vp := range student.VotedPositions {
		cand, ok := byID[vp.CandidateID]
		if !ok {
			// Candidate deleted after the vote; keep the position line.
			receipt.VotedCandidates = append(receipt.VotedCandidates, models.VotedCandidate{Position: vp.Position})
			continue
		}
		receipt.VotedCandidates = append(receipt.VotedCandidates, models.VotedCandidate{
			Position:      vp.Position,
			CandidateName: cand.Name,
			Image:         cand.Image,
		})
	}
	return receipt, nil
}

// LedgerEntries returns the full ledger with display names resolved, as
// shown on the admin dashboard.
func (s *VoteService) LedgerEntries(ctx context.Context) ([]models.VoteLogEntry, error) {
	logs, err := s.voteLogRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	studentIDs := make(map[string]string, len(students))
	for _, st := range students {
		studentIDs[st.ID] = st.StudentID
	}

	candidates, err := s.candidateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	candidateNames := make(map[string]string, len(candidates))
	for _, cand := range candidates {
		candidateNames[cand.ID] = cand.Name
	}

	entries := make([]models.VoteLogEntry, 0, len(logs))
	for _, entry := range logs {
		entries = append(entries, models.VoteLogEntry{
			ID:            entry.ID,
			StudentID:     studentIDs[entry.StudentRowID],
			CandidateID:   entry.CandidateID,
			CandidateName: candidateNames[entry.CandidateID],
			Position:      entry.Position,
			CreatedAt:     entry.CreatedAt,
		})
	}
	return entries, nil
}
