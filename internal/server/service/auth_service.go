package service

import (
	"context"
	"errors"
	"time"

	"election-service/internal/ports/models"
	"election-service/internal/server/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues JWTs for students (studentId + password) and for
// admins (shared secret).
type AuthService struct {
	studentRepo *repository.StudentRepository
	jwtSecret   string
	jwtExpire   time.Duration
	adminSecret string
}

func NewAuthService(studentRepo *repository.StudentRepository, jwtSecret string, jwtExpire time.Duration, adminSecret string) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		jwtSecret:   jwtSecret,
		jwtExpire:   jwtExpire,
		adminSecret: adminSecret,
	}
}

// LoginResult carries the token plus the redirect hint: students who
// already voted land on their slip instead of the ballot.
type LoginResult struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	HasVoted bool   `json:"has_voted"`
}

// StudentLogin authenticates a student by external id and password.
// Suspended students still authenticate; they are blocked at the ballot,
// not the door.
func (s *AuthService) StudentLogin(ctx context.Context, studentID, password string) (*LoginResult, error) {
	student, err := s.studentRepo.FindByStudentID(ctx, studentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(student.ID, student.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		Role:     student.Role,
		HasVoted: student.HasVoted,
	}, nil
}

// AdminLogin authenticates an administrator with the shared secret and
// issues a teacher-role token.
func (s *AuthService) AdminLogin(secret string) (*LoginResult, error) {
	if secret == "" || secret != s.adminSecret {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken("", models.RoleTeacher)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token: token,
		Role:  models.RoleTeacher,
	}, nil
}

func (s *AuthService) generateToken(subject, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(s.jwtExpire).Unix(),
	})
	return token.SignedString([]byte(s.jwtSecret))
}

// HashPassword hashes a password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
