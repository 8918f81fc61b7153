package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-management/auth"
	"hotel-management/models"
)

// UserService is the store for user accounts plus the signup/login flows.
type UserService struct {
	DB     *gorm.DB
	Hasher auth.Hasher
	Tokens auth.TokenIssuer
}

func NewUserService(db *gorm.DB, hasher auth.Hasher, tokens auth.TokenIssuer) *UserService {
	return &UserService{DB: db, Hasher: hasher, Tokens: tokens}
}

// Signup hashes the password and inserts the user. The duplicate-email check
// is lookup-before-insert: advisory, not atomic. On a duplicate the existing
// record is returned alongside ErrDuplicateEmail so the caller can echo it.
func (s *UserService) Signup(user models.User) (models.User, error) {
	existing, err := s.GetByEmail(user.Email)
	if err == nil {
		return existing, ErrDuplicateEmail
	}
	if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}

	hashed, err := s.Hasher.Hash(user.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.ID = ""
	user.Password = hashed
	user.TotalBookedRooms = nil

	if err := s.DB.Create(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByID(id string) (models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.User{}, ErrMalformedID
	}
	var user models.User
	if err := s.DB.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByEmail(email string) (models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// Login verifies the password against the stored hash and issues a signed
// token. A missing signing secret surfaces as auth.ErrMissingSecret.
func (s *UserService) Login(email, password string) (models.User, string, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		return models.User{}, "", err
	}
	if !s.Hasher.Verify(password, user.Password) {
		return models.User{}, "", ErrInvalidCredentials
	}
	token, err := s.Tokens.Issue(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
