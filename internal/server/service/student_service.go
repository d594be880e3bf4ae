package service

import (
	"context"
	"errors"

	"election-service/internal/ports/models"
	"election-service/internal/server/repository"

	"gorm.io/gorm"
)

var (
	ErrStudentExists      = errors.New("student already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrStudentHasNotVoted = errors.New("student has not voted")
)

// StudentService covers admin management of voter accounts, including
// the per-student vote reset correction.
type StudentService struct {
	db            *gorm.DB
	studentRepo   *repository.StudentRepository
	candidateRepo *repository.CandidateRepository
	voteLogRepo   *repository.VoteLogRepository
}

func NewStudentService(
	db *gorm.DB,
	studentRepo *repository.StudentRepository,
	candidateRepo *repository.CandidateRepository,
	voteLogRepo *repository.VoteLogRepository,
) *StudentService {
	return &StudentService{
		db:            db,
		studentRepo:   studentRepo,
		candidateRepo: candidateRepo,
		voteLogRepo:   voteLogRepo,
	}
}

// Add registers a new voter account with a hashed password.
func (s *StudentService) Add(ctx context.Context, req models.AddStudentRequest) (*models.Student, error) {
	if _, err := s.studentRepo.FindByStudentID(ctx, req.StudentID); err == nil {
		return nil, ErrStudentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	student := &models.Student{
		StudentID: req.StudentID,
		Password:  hashed,
		Role:      role,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStudentExists
		}
		return nil, err
	}
	return student, nil
}

// List returns all voter accounts.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.FindAll(ctx)
}

// Delete removes a voter account. The student's ledger rows are kept;
// use ResetVotes first to undo a cast ballot.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.studentRepo.Delete(ctx, id)
}

// UpdatePassword resets a student's password after confirming the two
// entries match.
func (s *StudentService) UpdatePassword(ctx context.Context, id string, req models.UpdatePasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if _, err := s.studentRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrStudentNotFound
		}
		return err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return err
	}
	return s.studentRepo.UpdatePassword(ctx, id, hashed)
}

// SetSuspended suspends or reinstates a student.
func (s *StudentService) SetSuspended(ctx context.Context, id string, suspended bool) error {
	if _, err := s.studentRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrStudentNotFound
		}
		return err
	}
	return s.studentRepo.SetSuspended(ctx, id, suspended)
}

// ResetVotes undoes one student's cast ballot: each referenced candidate
// counter is decremented, the student's ledger rows are deleted, and the
// ballot record is cleared, all in one transaction.
func (s *StudentService) ResetVotes(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		studentRepo := s.studentRepo.WithTx(tx)
		candidateRepo := s.candidateRepo.WithTx(tx)
		voteLogRepo := s.voteLogRepo.WithTx(tx)

		student, err := studentRepo.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrStudentNotFound
		}
		if err != nil {
			return err
		}
		if !student.HasVoted && len(student.VotedPositions) == 0 {
			return ErrStudentHasNotVoted
		}

		logs, err := voteLogRepo.FindByStudent(ctx, student.ID)
		if err != nil {
			return err
		}
		for _, entry := range logs {
			if err := candidateRepo.IncrementVotes(ctx, entry.CandidateID, -1); err != nil {
				return err
			}
		}
		if err := voteLogRepo.DeleteByStudent(ctx, student.ID); err != nil {
			return err
		}
		return studentRepo.ClearVotes(ctx, student.ID)
	})
}
