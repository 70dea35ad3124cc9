package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/auth"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/metrics"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/repository"
)

const minPasswordLength = 6

// SignupInput carries the fields of the signup form.
type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// IdentityService handles the user registry and the single session.
//
// Expected outcomes (bad credentials, failed validation) come back as
// *errors.Failure. Any other error means the store or the hasher failed.
type IdentityService interface {
	// EnsureSeedData creates the demo users, complaints and counter on an empty
	// registry. It does nothing once any user exists.
	EnsureSeedData(ctx context.Context) error
	HashPassword(ctx context.Context, plaintext string) (string, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	Signup(ctx context.Context, input SignupInput) (*model.User, error)
	Logout(ctx context.Context) error
	// CurrentUser returns nil when nobody is signed in or the session points at
	// a user that no longer exists.
	CurrentUser(ctx context.Context) (*model.User, error)
}

type identityService struct {
	repos   *repository.Repositories
	hasher  auth.Hasher
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewIdentityService creates a new identity service. A nil clock uses time.Now.
func NewIdentityService(repos *repository.Repositories, hasher auth.Hasher, m *metrics.Metrics, logger *zap.Logger, now func() time.Time) IdentityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &identityService{
		repos:   repos,
		hasher:  hasher,
		metrics: m,
		logger:  logger,
		now:     clockOrNow(now),
	}
}

func (s *identityService) HashPassword(ctx context.Context, plaintext string) (string, error) {
	hash, err := s.hasher.HashPassword(ctx, plaintext)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (s *identityService) EnsureSeedData(ctx context.Context) error {
	return s.repos.WithLock(ctx, func(ctx context.Context) error {
		users, err := s.repos.Users.List(ctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if len(users) > 0 {
			return nil
		}

		adminHash, err := s.HashPassword(ctx, seedAdminPassword)
		if err != nil {
			return err
		}
		userHash, err := s.HashPassword(ctx, seedUserPassword)
		if err != nil {
			return err
		}

		if err := s.repos.Users.SaveAll(ctx, seedUsers(s.now().UTC(), adminHash, userHash)); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		complaints := seedComplaints()
		if err := s.repos.Complaints.SaveAll(ctx, complaints); err != nil {
			return fmt.Errorf("seed complaints: %w", err)
		}
		if err := s.repos.Counter.Set(ctx, len(complaints)); err != nil {
			return fmt.Errorf("seed counter: %w", err)
		}

		s.logger.Info("Seeded demo data",
			zap.Int("users", 3),
			zap.Int("complaints", len(complaints)))
		return nil
	})
}

func (s *identityService) Login(ctx context.Context, email, password string) (*model.User, error) {
	var found *model.User
	err := s.repos.WithLock(ctx, func(ctx context.Context) error {
		users, err := s.repos.Users.List(ctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		user := findByEmail(users, normalizeEmail(email))
		if user == nil {
			return errors.ErrInvalidCredentials
		}

		hash, err := s.HashPassword(ctx, password)
		if err != nil {
			return err
		}
		if hash != user.PasswordHash {
			return errors.ErrInvalidCredentials
		}

		if err := s.repos.Session.Set(ctx, model.Session{UserID: user.ID}); err != nil {
			return fmt.Errorf("store session: %w", err)
		}
		found = user
		return nil
	})
	if _, ok := errors.AsFailure(err); ok {
		s.metrics.Login(false)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.Login(true)
	s.logger.Info("User logged in", zap.String("user_id", found.ID))
	return found, nil
}

func (s *identityService) Signup(ctx context.Context, input SignupInput) (*model.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" {
		return nil, errors.ErrNameRequired
	}
	if email == "" {
		return nil, errors.ErrEmailRequired
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLength {
		return nil, errors.ErrPasswordTooShort
	}

	var created *model.User
	err := s.repos.WithLock(ctx, func(ctx context.Context) error {
		users, err := s.repos.Users.List(ctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if findByEmail(users, email) != nil {
			return errors.ErrEmailTaken
		}

		hash, err := s.HashPassword(ctx, input.Password)
		if err != nil {
			return err
		}

		user := model.User{
			ID:           newID("user"),
			Name:         name,
			Email:        email,
			Phone:        strings.TrimSpace(input.Phone),
			Role:         model.RoleUser,
			PasswordHash: hash,
			CreatedAt:    s.now().UTC(),
		}

		next := append([]model.User{user}, users...)
		if err := s.repos.Users.SaveAll(ctx, next); err != nil {
			return fmt.Errorf("save users: %w", err)
		}
		if err := s.repos.Session.Set(ctx, model.Session{UserID: user.ID}); err != nil {
			return fmt.Errorf("store session: %w", err)
		}
		created = &user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Signup()
	s.logger.Info("User signed up", zap.String("user_id", created.ID))
	return created, nil
}

func (s *identityService) Logout(ctx context.Context) error {
	return s.repos.WithLock(ctx, func(ctx context.Context) error {
		if err := s.repos.Session.Clear(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return nil
	})
}

func (s *identityService) CurrentUser(ctx context.Context) (*model.User, error) {
	var current *model.User
	err := s.repos.WithLock(ctx, func(ctx context.Context) error {
		session, err := s.repos.Session.Get(ctx)
		if err != nil {
			return fmt.Errorf("read session: %w", err)
		}
		if session == nil {
			return nil
		}

		users, err := s.repos.Users.List(ctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		for i := range users {
			if users[i].ID == session.UserID {
				current = &users[i]
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// findByEmail compares against the normalized stored email, so records
// written with odd casing still match.
func findByEmail(users []model.User, normalized string) *model.User {
	for i := range users {
		if normalizeEmail(users[i].Email) == normalized {
			return &users[i]
		}
	}
	return nil
}
