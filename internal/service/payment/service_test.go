package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakapradana/printpos/internal/domain/models"
	"github.com/rakapradana/printpos/internal/repository/mongodb"
)

type paymentUpdate struct {
	paidAmount float64
	status     models.PaymentStatus
	method     string
}

type fakeRepo struct {
	order   models.Order
	updates []paymentUpdate
}

func (f *fakeRepo) GetOrder(ctx context.Context, id string) (models.Order, error) {
	if id != f.order.ID {
		return models.Order{}, mongodb.ErrNotFound
	}
	return f.order, nil
}

func (f *fakeRepo) UpdateOrderPayment(ctx context.Context, id string, paidAmount float64, status models.PaymentStatus, method string, updatedAt time.Time) error {
	if id != f.order.ID {
		return mongodb.ErrNotFound
	}
	f.updates = append(f.updates, paymentUpdate{paidAmount: paidAmount, status: status, method: method})
	f.order.PaidAmount = paidAmount
	f.order.PaymentStatus = status
	f.order.PaymentMethod = method
	f.order.UpdatedAt = &updatedAt
	return nil
}

func newService(total float64) (*Service, *fakeRepo) {
	repo := &fakeRepo{order: models.Order{
		ID:            "P-20240307-140509-123456",
		CustomerName:  "Budi",
		TotalCost:     total,
		PaymentStatus: models.PaymentUnpaid,
		CreatedAt:     time.Now(),
	}}
	return NewService(repo, nil), repo
}

func TestSettleOverpayment(t *testing.T) {
	svc, repo := newService(100000)

	res, err := svc.Settle(context.Background(), repo.order.ID, 150000)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPaid, res.Order.PaymentStatus)
	assert.Equal(t, "Cash", res.Order.PaymentMethod)
	assert.Equal(t, 150000.0, res.Order.PaidAmount)
	assert.Equal(t, 50000.0, res.Change)
	assert.Zero(t, res.Outstanding)
}

func TestSettlePartialPayment(t *testing.T) {
	svc, repo := newService(100000)

	res, err := svc.Settle(context.Background(), repo.order.ID, 40000)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentUnpaid, res.Order.PaymentStatus)
	assert.Equal(t, 60000.0, res.Outstanding)
	assert.Zero(t, res.Change)
	// A partial payment still records its method.
	assert.Equal(t, "Cash", res.Order.PaymentMethod)
}

func TestSettleExactPayment(t *testing.T) {
	svc, repo := newService(100000)

	res, err := svc.Settle(context.Background(), repo.order.ID, 100000)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPaid, res.Order.PaymentStatus)
	assert.Zero(t, res.Change)
	assert.Zero(t, res.Outstanding)
}

func TestSettleIsIdempotent(t *testing.T) {
	svc, repo := newService(100000)

	first, err := svc.Settle(context.Background(), repo.order.ID, 150000)
	require.NoError(t, err)
	second, err := svc.Settle(context.Background(), repo.order.ID, 150000)
	require.NoError(t, err)

	assert.Equal(t, first.Change, second.Change)
	assert.Equal(t, first.Order.PaymentStatus, second.Order.PaymentStatus)
	assert.Equal(t, first.Order.PaidAmount, second.Order.PaidAmount)
	assert.Len(t, repo.updates, 2)
	assert.Equal(t, repo.updates[0], repo.updates[1])
}

func TestSettleRejectsNegativeAmount(t *testing.T) {
	svc, repo := newService(100000)

	_, err := svc.Settle(context.Background(), repo.order.ID, -1)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.updates)
}

func TestSettleMissingOrder(t *testing.T) {
	svc, _ := newService(100000)

	_, err := svc.Settle(context.Background(), "nope", 100000)
	assert.ErrorIs(t, err, mongodb.ErrNotFound)
}

func TestSettleZeroTotalOrder(t *testing.T) {
	svc, repo := newService(0)

	res, err := svc.Settle(context.Background(), repo.order.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, res.Order.PaymentStatus)
	assert.Zero(t, res.Change)
	assert.Zero(t, res.Outstanding)
}
