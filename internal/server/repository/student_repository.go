package repository

import (
	"context"

	"election-service/internal/ports/models"

	"gorm.io/gorm"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *StudentRepository) WithTx(tx *gorm.DB) *StudentRepository {
	return &StudentRepository{db: tx}
}

// Create registers a new student account
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// FindByID finds a student by row id, with voted positions preloaded.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Preload("VotedPositions").Where("id = ?", id).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByStudentID finds a student by external student id
func (r *StudentRepository) FindByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Preload("VotedPositions").Where("student_id = ?", studentID).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// FindAll returns every student ordered by external student id.
func (r *StudentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).Preload("VotedPositions").Order("student_id").Find(&students).Error
	return students, err
}

// AppendVotedPositions inserts the given choices. The composite unique
// index on (student, position) rejects a duplicate choice for an office.
func (r *StudentRepository) AppendVotedPositions(ctx context.Context, positions []models.VotedPosition) error {
	return r.db.WithContext(ctx).Create(&positions).Error
}

// MarkVoted flips has_voted, but only if it is still false. The returned
// row count is the caller's signal that a concurrent ballot won the race.
func (r *StudentRepository) MarkVoted(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Student{}).
		Where("id = ? AND has_voted = ?", id, false).
		UpdateColumn("has_voted", true)
	return res.RowsAffected, res.Error
}

// ClearVotes removes a student's recorded choices and voting flag.
func (r *StudentRepository) ClearVotes(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("student_row_id = ?", id).Delete(&models.VotedPosition{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).UpdateColumn("has_voted", false).Error
}

// ClearAllVotes resets the voting state of every student.
func (r *StudentRepository) ClearAllVotes(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.VotedPosition{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&models.Student{}).Where("1 = 1").UpdateColumn("has_voted", false).Error
}

// UpdatePassword replaces a student's password hash.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id, hashed string) error {
	return r.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).UpdateColumn("password", hashed).Error
}

// SetSuspended toggles a student's suspension flag.
func (r *StudentRepository) SetSuspended(ctx context.Context, id string, suspended bool) error {
	return r.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).UpdateColumn("is_suspended", suspended).Error
}

// Delete removes a student account along with its recorded choices.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("student_row_id = ?", id).Delete(&models.VotedPosition{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Student{}).Error
}
