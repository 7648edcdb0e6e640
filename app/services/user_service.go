package services

import (
	"errors"

	"death-registry/app/dto"
	"death-registry/app/models"
	"death-registry/app/repo"

	validation "github.com/go-ozzo/ozzo-validation"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// EnsureAdmin seeds an admin account at boot if none with that name exists.
func (s *UserService) EnsureAdmin(name, email, password string) error {
	count, err := s.users.CountByName(name)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Name: name, Email: email, PasswordHash: string(hash), Role: models.RoleAdmin})
}

// Register creates a user after checking name and email uniqueness.
// The role defaults to "user" when the request leaves it empty.
func (s *UserService) Register(req dto.RegisterRequest) (*models.User, error) {
	verrs := validation.Errors{}
	if count, err := s.users.CountByName(req.Name); err != nil {
		return nil, err
	} else if count > 0 {
		verrs["name"] = errors.New("has already been taken")
	}
	if count, err := s.users.CountByEmail(req.Email); err != nil {
		return nil, err
	} else if count > 0 {
		verrs["email"] = errors.New("has already been taken")
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Name: req.Name, Email: req.Email, PasswordHash: string(hash), Role: role}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// ValidateCredentials resolves email+password to a user. Any mismatch yields
// the same ErrInvalidCredentials.
func (s *UserService) ValidateCredentials(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) ListAll() ([]models.User, error) {
	return s.users.ListAll()
}

// Search returns users whose name or email contains q, case-insensitively.
// An empty result is a valid answer, not an error.
func (s *UserService) Search(q string) ([]models.User, error) {
	return s.users.Search(q)
}
