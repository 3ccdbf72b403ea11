// Package account manages staff logins: credential checks, session binding,
// account administration and first-run seeding.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/repository/mongodb"
)

const defaultOwnerUsername = "owner"

var (
	// ErrInvalidCredentials is returned when username or password do not match.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrForbidden is returned when the acting account lacks the required role.
	ErrForbidden = errors.New("insufficient role")
	// ErrValidation is wrapped by all input validation failures.
	ErrValidation = errors.New("validation failed")
)

type actorContextKey struct{}

// WithActor stores the acting account in the context. Handlers resolve the
// session header once per request; engines re-check roles from here.
func WithActor(ctx context.Context, actor models.Account) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext returns the acting account, if any.
func ActorFromContext(ctx context.Context) (models.Account, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(models.Account)
	return actor, ok
}

// RequireRole verifies that the context carries an actor holding one of the
// allowed roles.
func RequireRole(ctx context.Context, roles ...models.Role) error {
	actor, ok := ActorFromContext(ctx)
	if !ok {
		return ErrForbidden
	}
	for _, role := range roles {
		if actor.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

// Repository is the slice of the document store the account service needs.
type Repository interface {
	CreateAccount(ctx context.Context, account models.Account) error
	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (models.Account, error)
	GetAccountBySession(ctx context.Context, sessionID string) (models.Account, error)
	BindSession(ctx context.Context, accountID string, sessionID string) error
	ReleaseSession(ctx context.Context, sessionID string) error
	DeleteAccount(ctx context.Context, id string) error
	CountAccounts(ctx context.Context) (int64, error)
}

// Service implements account management and the login flow.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService wires a new account service instance.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Login checks the credentials and binds the caller's session identity to the
// matching account. Any other account holding that session identity is
// released first, so a session maps to at most one account.
func (s *Service) Login(ctx context.Context, username, password, sessionID string) (models.Account, error) {
	if sessionID == "" {
		return models.Account{}, fmt.Errorf("%w: session identity required", ErrValidation)
	}

	acc, err := s.repo.GetAccountByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return models.Account{}, ErrInvalidCredentials
		}
		return models.Account{}, fmt.Errorf("lookup account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return models.Account{}, ErrInvalidCredentials
	}

	if err := s.repo.ReleaseSession(ctx, sessionID); err != nil {
		return models.Account{}, fmt.Errorf("release session: %w", err)
	}
	if err := s.repo.BindSession(ctx, acc.ID, sessionID); err != nil {
		return models.Account{}, fmt.Errorf("bind session: %w", err)
	}

	acc.SessionID = &sessionID
	s.logger.Info("login", zap.String("username", acc.Username), zap.String("role", string(acc.Role)))
	return acc, nil
}

// Logout clears the session binding, if any.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.repo.ReleaseSession(ctx, sessionID); err != nil {
		return fmt.Errorf("release session: %w", err)
	}
	return nil
}

// Resolve maps a session identity to its bound account.
func (s *Service) Resolve(ctx context.Context, sessionID string) (models.Account, error) {
	return s.repo.GetAccountBySession(ctx, sessionID)
}

// CreateParams holds the fields for a new staff account.
type CreateParams struct {
	Username string
	Password string
	Role     models.Role
}

// Create adds a staff account. Owner only.
func (s *Service) Create(ctx context.Context, params CreateParams) (models.Account, error) {
	if err := RequireRole(ctx, models.RoleOwner); err != nil {
		return models.Account{}, err
	}

	params.Username = strings.TrimSpace(params.Username)
	if params.Username == "" {
		return models.Account{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if params.Password == "" {
		return models.Account{}, fmt.Errorf("%w: password is required", ErrValidation)
	}
	if !params.Role.Valid() {
		return models.Account{}, fmt.Errorf("%w: unknown role %q", ErrValidation, params.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash password: %w", err)
	}

	acc := models.Account{
		ID:           uuid.NewString(),
		Username:     params.Username,
		PasswordHash: string(hash),
		Role:         params.Role,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return models.Account{}, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info("account created", zap.String("username", acc.Username), zap.String("role", string(acc.Role)))
	return acc, nil
}

// List returns all staff accounts. Owner only.
func (s *Service) List(ctx context.Context) ([]models.Account, error) {
	if err := RequireRole(ctx, models.RoleOwner); err != nil {
		return nil, err
	}
	return s.repo.ListAccounts(ctx)
}

// Delete removes a staff account. Owner only, and never the account the
// caller is logged in as.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := RequireRole(ctx, models.RoleOwner); err != nil {
		return err
	}
	if actor, ok := ActorFromContext(ctx); ok && actor.ID == id {
		return fmt.Errorf("%w: cannot delete the account you are logged in as", ErrValidation)
	}
	if err := s.repo.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// SeedDefaultOwner creates the initial owner account when the users
// collection is empty, mirroring first-run bootstrap.
func (s *Service) SeedDefaultOwner(ctx context.Context, password string) error {
	count, err := s.repo.CountAccounts(ctx)
	if err != nil {
		return fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	owner := models.Account{
		ID:           uuid.NewString(),
		Username:     defaultOwnerUsername,
		PasswordHash: string(hash),
		Role:         models.RoleOwner,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateAccount(ctx, owner); err != nil {
		return fmt.Errorf("seed owner account: %w", err)
	}

	s.logger.Info("no accounts found, default owner created")
	return nil
}
