package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/repository/mongodb"
)

type fakeRepo struct {
	accounts map[string]models.Account
}

func newFakeRepo(accounts ...models.Account) *fakeRepo {
	repo := &fakeRepo{accounts: make(map[string]models.Account)}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}
	return repo
}

func (f *fakeRepo) CreateAccount(ctx context.Context, a models.Account) error {
	f.accounts[a.ID] = a
	return nil
}

func (f *fakeRepo) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var out []models.Account
	for _, a := range f.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) GetAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	for _, a := range f.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return models.Account{}, mongodb.ErrNotFound
}

func (f *fakeRepo) GetAccountBySession(ctx context.Context, sessionID string) (models.Account, error) {
	for _, a := range f.accounts {
		if a.SessionID != nil && *a.SessionID == sessionID {
			return a, nil
		}
	}
	return models.Account{}, mongodb.ErrNotFound
}

func (f *fakeRepo) BindSession(ctx context.Context, accountID string, sessionID string) error {
	a, ok := f.accounts[accountID]
	if !ok {
		return mongodb.ErrNotFound
	}
	a.SessionID = &sessionID
	f.accounts[accountID] = a
	return nil
}

func (f *fakeRepo) ReleaseSession(ctx context.Context, sessionID string) error {
	for id, a := range f.accounts {
		if a.SessionID != nil && *a.SessionID == sessionID {
			a.SessionID = nil
			f.accounts[id] = a
		}
	}
	return nil
}

func (f *fakeRepo) DeleteAccount(ctx context.Context, id string) error {
	if _, ok := f.accounts[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeRepo) CountAccounts(ctx context.Context) (int64, error) {
	return int64(len(f.accounts)), nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func cashierAccount(t *testing.T) models.Account {
	t.Helper()
	return models.Account{
		ID:           "acc-kasir",
		Username:     "andi",
		PasswordHash: mustHash(t, "rahasia"),
		Role:         models.RoleCashier,
		CreatedAt:    time.Now(),
	}
}

func ownerCtx() context.Context {
	return WithActor(context.Background(), models.Account{ID: "acc-owner", Username: "owner", Role: models.RoleOwner})
}

func TestLogin(t *testing.T) {
	repo := newFakeRepo(cashierAccount(t))
	svc := NewService(repo, nil)

	acc, err := svc.Login(context.Background(), "andi", "rahasia", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCashier, acc.Role)
	require.NotNil(t, acc.SessionID)
	assert.Equal(t, "sess-1", *acc.SessionID)

	resolved, err := svc.Resolve(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "andi", resolved.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeRepo(cashierAccount(t))
	svc := NewService(repo, nil)

	_, err := svc.Login(context.Background(), "andi", "salah", "sess-1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	_, err := svc.Login(context.Background(), "tidakada", "apapun", "sess-1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRequiresSessionID(t *testing.T) {
	svc := NewService(newFakeRepo(cashierAccount(t)), nil)

	_, err := svc.Login(context.Background(), "andi", "rahasia", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginRebindsSession(t *testing.T) {
	first := cashierAccount(t)
	second := models.Account{
		ID:           "acc-spv",
		Username:     "rina",
		PasswordHash: mustHash(t, "rahasia2"),
		Role:         models.RoleSupervisor,
	}
	repo := newFakeRepo(first, second)
	svc := NewService(repo, nil)

	_, err := svc.Login(context.Background(), "andi", "rahasia", "sess-1")
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), "rina", "rahasia2", "sess-1")
	require.NoError(t, err)

	// The session identity moved to the second account; the first one lost it.
	resolved, err := svc.Resolve(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "rina", resolved.Username)
	assert.Nil(t, repo.accounts[first.ID].SessionID)
}

func TestLogout(t *testing.T) {
	repo := newFakeRepo(cashierAccount(t))
	svc := NewService(repo, nil)

	_, err := svc.Login(context.Background(), "andi", "rahasia", "sess-1")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), "sess-1"))

	_, err = svc.Resolve(context.Background(), "sess-1")
	assert.ErrorIs(t, err, mongodb.ErrNotFound)
}

func TestCreateAccount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	acc, err := svc.Create(ownerCtx(), CreateParams{Username: "andi", Password: "rahasia", Role: models.RoleCashier})
	require.NoError(t, err)
	assert.NotEmpty(t, acc.ID)
	assert.Equal(t, models.RoleCashier, acc.Role)
	// Stored as a bcrypt digest, never the cleartext.
	assert.NotEqual(t, "rahasia", acc.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("rahasia")))
}

func TestCreateAccountOwnerOnly(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	params := CreateParams{Username: "andi", Password: "rahasia", Role: models.RoleCashier}
	ctx := WithActor(context.Background(), models.Account{ID: "acc-spv", Role: models.RoleSupervisor})
	_, err := svc.Create(ctx, params)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(context.Background(), params)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateAccountValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	_, err := svc.Create(ownerCtx(), CreateParams{Username: " ", Password: "x", Role: models.RoleCashier})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ownerCtx(), CreateParams{Username: "andi", Password: "", Role: models.RoleCashier})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ownerCtx(), CreateParams{Username: "andi", Password: "x", Role: "admin"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteAccount(t *testing.T) {
	target := cashierAccount(t)
	repo := newFakeRepo(target)
	svc := NewService(repo, nil)

	require.NoError(t, svc.Delete(ownerCtx(), target.ID))
	assert.Empty(t, repo.accounts)
}

func TestDeleteOwnAccountRejected(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	err := svc.Delete(ownerCtx(), "acc-owner")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSeedDefaultOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	require.NoError(t, svc.SeedDefaultOwner(context.Background(), "123"))
	require.Len(t, repo.accounts, 1)

	owner, err := svc.Login(context.Background(), "owner", "123", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, owner.Role)
}

func TestSeedDefaultOwnerSkipsWhenAccountsExist(t *testing.T) {
	repo := newFakeRepo(cashierAccount(t))
	svc := NewService(repo, nil)

	require.NoError(t, svc.SeedDefaultOwner(context.Background(), "123"))
	assert.Len(t, repo.accounts, 1)
	_, err := repo.GetAccountByUsername(context.Background(), "owner")
	assert.ErrorIs(t, err, mongodb.ErrNotFound)
}

func TestRequireRole(t *testing.T) {
	ctx := WithActor(context.Background(), models.Account{Role: models.RoleSupervisor})

	assert.NoError(t, RequireRole(ctx, models.RoleSupervisor, models.RoleOwner))
	assert.ErrorIs(t, RequireRole(ctx, models.RoleOwner), ErrForbidden)
	assert.ErrorIs(t, RequireRole(context.Background(), models.RoleSupervisor), ErrForbidden)
}
