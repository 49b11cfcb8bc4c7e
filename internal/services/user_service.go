package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"

	"storeapi/internal/apperrors"
	"storeapi/internal/models"
	"storeapi/internal/repositories"
	"storeapi/internal/validation"

	"github.com/juju/errors"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to users.
type UserService struct {
	repo      repositories.UserRepository
	publisher EventPublisher
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(repo repositories.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create registers a new user with a hashed password.
func (s *UserService) Create(ctx context.Context, in models.CreateUserInput) (*models.User, error) {
	if err := validation.UserCreate(in); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, in.Email, 0); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: in.Name, Email: in.Email, Password: hash}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	publish(s.publisher, EventUserCreated, user)
	return user, nil
}

// FindAll lists every user with its store.
func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// FindByID returns a user with its store and products.
func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies the supplied fields to an existing user. Changing the email
// to one held by another user is a conflict; keeping the current one is not.
func (s *UserService) Update(ctx context.Context, id uint, in models.UpdateUserInput) (*models.User, error) {
	if err := validation.UserUpdate(in); err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil && *in.Email != current.Email {
		if err := s.ensureEmailFree(ctx, *in.Email, id); err != nil {
			return nil, err
		}
		fields["email"] = *in.Email
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}

	user, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	publish(s.publisher, EventUserUpdated, user)
	return user, nil
}

// Delete removes a user along with its store and products.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	publish(s.publisher, EventUserDeleted, deletedEntity{ID: id})
	return nil
}

// ensureEmailFree fails with Conflict when email belongs to a user other
// than exceptID.
func (s *UserService) ensureEmailFree(ctx context.Context, email string, exceptID uint) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.ID != exceptID {
			return apperrors.NewConflict("email already registered")
		}
		return nil
	case errors.Is(err, apperrors.NotFound):
		return nil
	default:
		return err
	}
}

// hashPassword bcrypts the base64 SHA-256 digest of password. The digest is
// 44 bytes, so passwords of any length fit under bcrypt's 72 byte limit.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.NewInternal(err, "failed to hash password")
	}
	return string(hash), nil
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
