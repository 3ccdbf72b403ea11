package expense

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/repository/mongodb"
	"github.com/rakapradana/printpos/internal/service/account"
)

type fakeRepo struct {
	expenses map[string]models.Expense
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{expenses: make(map[string]models.Expense)}
}

func (f *fakeRepo) CreateExpense(ctx context.Context, e models.Expense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeRepo) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	for _, e := range f.expenses {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeRepo) DeleteExpense(ctx context.Context, id string) error {
	if _, ok := f.expenses[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(f.expenses, id)
	return nil
}

func asRole(role models.Role) context.Context {
	return account.WithActor(context.Background(), models.Account{ID: "acc-1", Role: role})
}

func TestAdd(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	exp, err := svc.Add(context.Background(), "  Tinta printer  ", 30000)
	require.NoError(t, err)

	assert.NotEmpty(t, exp.ID)
	assert.Equal(t, "Tinta printer", exp.Description)
	assert.Equal(t, 30000.0, exp.Cost)
	assert.False(t, exp.CreatedAt.IsZero())
	assert.Len(t, repo.expenses, 1)
}

func TestAddRequiresDescription(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	_, err := svc.Add(context.Background(), "   ", 30000)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteRequiresSupervisorOrOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	exp, err := svc.Add(context.Background(), "Tinta", 30000)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(asRole(models.RoleCashier), exp.ID), account.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), exp.ID), account.ErrForbidden)
	assert.Len(t, repo.expenses, 1)

	require.NoError(t, svc.Delete(asRole(models.RoleOwner), exp.ID))
	assert.Empty(t, repo.expenses)
}

func TestDeleteMissingExpense(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	err := svc.Delete(asRole(models.RoleSupervisor), "nope")
	assert.ErrorIs(t, err, mongodb.ErrNotFound)
}
